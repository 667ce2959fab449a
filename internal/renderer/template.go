package renderer

// resumeTemplate is the single-page HTML layout for both the live preview and
// the print pipeline. Export mode drops the preview chrome (zoom transform,
// page shadow, break indicators) and leaves a bare A4 page; the PDF printer
// runs with zero native margins, so the page padding is the margin.
const resumeTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{ .Basics.Name }}</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: {{ .Styles.FontFamily }};
    font-size: {{ .Styles.FontSizePx }}px;
    line-height: {{ .Styles.LineHeight }};
    color: #1b1b1f;
    background: #f1f3f5;
  }
  body.mode-export { background: #ffffff; }
  .page {
    position: relative;
    margin: 0 auto;
    background: #ffffff;
    width: {{ .Styles.PageWidthPx }}px;
    min-height: {{ .Styles.PageHeightPx }}px;
    padding: {{ .Styles.PageMarginPx }}px;
  }
  body.mode-preview .page {
    transform: scale({{ .Styles.Zoom }});
    transform-origin: top center;
    box-shadow: 0 2px 12px rgba(0, 0, 0, 0.15);
  }
  .basics { margin-bottom: {{ .Styles.SectionSpacingPx }}px; }
  .basics.align-start { text-align: left; }
  .basics.align-center { text-align: center; }
  .basics.align-end { text-align: right; }
  .basics h1 { font-size: 1.9em; line-height: 1.2; }
  .basics .headline { font-size: 1.1em; color: #4a4a52; margin-top: 2px; }
  .basics .contact-line { margin-top: 6px; font-size: 0.92em; color: #35353b; }
  .basics .contact-line a { color: inherit; text-decoration: none; }
  .basics .contact-sep { margin: 0 6px; color: #b2b2ba; }
  .resume-section { margin-bottom: {{ .Styles.SectionSpacingPx }}px; }
  .resume-section h2 {
    font-size: 1.05em;
    text-transform: uppercase;
    letter-spacing: 0.06em;
    border-bottom: 1px solid #d8d8de;
    padding-bottom: 3px;
    margin-bottom: 8px;
  }
  .entry { margin-bottom: 10px; }
  .entry:last-child { margin-bottom: 0; }
  .entry-head { display: flex; justify-content: space-between; gap: 12px; }
  .entry-title { font-weight: 600; }
  .entry-org { color: #4a4a52; }
  .entry-period { color: #6a6a72; white-space: nowrap; font-size: 0.92em; }
  .entry-sub { color: #6a6a72; font-size: 0.92em; }
  .rich { margin-top: 4px; }
  .rich ul, .rich ol { padding-left: 1.3em; }
  .rich a { color: inherit; }
  .keywords { margin-top: 4px; }
  .keyword {
    display: inline-block;
    background: #eef0f3;
    border-radius: 3px;
    padding: 1px 7px;
    margin: 0 4px 4px 0;
    font-size: 0.85em;
  }
  .page-break-overlay {
    position: absolute;
    left: 0;
    right: 0;
    pointer-events: none;
  }
  @media print {
    body { background: #ffffff; }
    .page { box-shadow: none; transform: none; }
    .page-break-overlay { display: none; }
  }
</style>
</head>
<body class="mode-{{ .Mode }}">
<div class="page">
  <header class="basics align-{{ .Basics.Alignment }}">
    <h1>{{ .Basics.Name }}</h1>
    {{- if .Basics.Title }}
    <div class="headline">{{ .Basics.Title }}</div>
    {{- end }}
    {{- if or .Basics.Contacts .Basics.Links }}
    <div class="contact-line">
      {{- range $i, $c := .Basics.Contacts }}
      {{- if $i }}<span class="contact-sep">·</span>{{ end }}
      {{- if $c.Href }}<a href="{{ $c.Href }}">{{ $c.Value }}</a>{{ else }}<span>{{ $c.Value }}</span>{{ end }}
      {{- if $c.BreakAfter }}<br>{{ end }}
      {{- end }}
      {{- range $i, $l := .Basics.Links }}
      {{- if or $i $.Basics.Contacts }}<span class="contact-sep">·</span>{{ end }}
      <a href="{{ $l.Href }}">{{ $l.Label }}</a>
      {{- if $l.BreakAfter }}<br>{{ end }}
      {{- end }}
    </div>
    {{- end }}
  </header>

  {{- range .Sections }}
  <section class="resume-section section-{{ .ID }}">
    <h2>{{ .Title }}</h2>

    {{- if eq .Kind "summary" }}
    <div class="rich">{{ .Summary }}</div>
    {{- end }}

    {{- if eq .Kind "experience" }}
    {{- range .Experience }}
    <div class="entry">
      <div class="entry-head">
        <span><span class="entry-title">{{ .Title }}</span>{{ if .Company }} <span class="entry-org">· {{ .Company }}</span>{{ end }}</span>
        {{- if .Period }}<span class="entry-period">{{ .Period }}</span>{{ end }}
      </div>
      {{- if .Location }}<div class="entry-sub">{{ .Location }}</div>{{ end }}
      {{- if .Summary }}<div class="rich">{{ .Summary }}</div>{{ end }}
    </div>
    {{- end }}
    {{- end }}

    {{- if eq .Kind "education" }}
    {{- range .Education }}
    <div class="entry">
      <div class="entry-head">
        <span><span class="entry-title">{{ .Institution }}</span>{{ if .Degree }} <span class="entry-org">· {{ .Degree }}</span>{{ end }}</span>
        {{- if .Period }}<span class="entry-period">{{ .Period }}</span>{{ end }}
      </div>
      {{- if .Field }}<div class="entry-sub">{{ .Field }}</div>{{ end }}
      {{- if .Summary }}<div class="rich">{{ .Summary }}</div>{{ end }}
    </div>
    {{- end }}
    {{- end }}

    {{- if eq .Kind "projects" }}
    {{- range .Projects }}
    <div class="entry">
      <div class="entry-head">
        <span><span class="entry-title">{{ .Name }}</span>{{ if .Description }} <span class="entry-org">· {{ .Description }}</span>{{ end }}</span>
        {{- if .URL }}<span class="entry-period"><a href="{{ .URL }}">{{ .URL }}</a></span>{{ end }}
      </div>
      {{- if .Keywords }}<div class="keywords">{{ range .Keywords }}<span class="keyword">{{ . }}</span>{{ end }}</div>{{ end }}
      {{- if .Summary }}<div class="rich">{{ .Summary }}</div>{{ end }}
    </div>
    {{- end }}
    {{- end }}

    {{- if eq .Kind "skills" }}
    {{- range .Skills }}
    <div class="entry">
      <div class="entry-head">
        <span><span class="entry-title">{{ .Name }}</span>{{ if .Level }} <span class="entry-org">· {{ .Level }}</span>{{ end }}</span>
      </div>
      {{- if .Keywords }}<div class="keywords">{{ range .Keywords }}<span class="keyword">{{ . }}</span>{{ end }}</div>{{ end }}
    </div>
    {{- end }}
    {{- end }}

    {{- if eq .Kind "languages" }}
    {{- range .Languages }}
    <div class="entry">
      <div class="entry-head">
        <span><span class="entry-title">{{ .Name }}</span>{{ if .Proficiency }} <span class="entry-org">· {{ .Proficiency }}</span>{{ end }}</span>
      </div>
    </div>
    {{- end }}
    {{- end }}

    {{- if eq .Kind "certifications" }}
    {{- range .Certifications }}
    <div class="entry">
      <div class="entry-head">
        <span><span class="entry-title">{{ .Name }}</span>{{ if .Issuer }} <span class="entry-org">· {{ .Issuer }}</span>{{ end }}</span>
        {{- if .Date }}<span class="entry-period">{{ .Date }}</span>{{ end }}
      </div>
      {{- if .URL }}<div class="entry-sub"><a href="{{ .URL }}">{{ .URL }}</a></div>{{ end }}
    </div>
    {{- end }}
    {{- end }}

    {{- if eq .Kind "awards" }}
    {{- range .Awards }}
    <div class="entry">
      <div class="entry-head">
        <span><span class="entry-title">{{ .Name }}</span>{{ if .Issuer }} <span class="entry-org">· {{ .Issuer }}</span>{{ end }}</span>
        {{- if .Date }}<span class="entry-period">{{ .Date }}</span>{{ end }}
      </div>
      {{- if .Summary }}<div class="rich">{{ .Summary }}</div>{{ end }}
    </div>
    {{- end }}
    {{- end }}

    {{- if eq .Kind "volunteering" }}
    {{- range .Volunteering }}
    <div class="entry">
      <div class="entry-head">
        <span><span class="entry-title">{{ .Organization }}</span>{{ if .Role }} <span class="entry-org">· {{ .Role }}</span>{{ end }}</span>
        {{- if .Period }}<span class="entry-period">{{ .Period }}</span>{{ end }}
      </div>
      {{- if .Summary }}<div class="rich">{{ .Summary }}</div>{{ end }}
    </div>
    {{- end }}
    {{- end }}
  </section>
  {{- end }}

  {{- if .Styles.ShowBreaks }}
  <div class="page-break-overlay" style="{{ .Styles.BreakOverlayCSS }}"></div>
  {{- end }}
</div>
</body>
</html>
`
