package exporter

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
	"resumeforge/internal/logging/types"
)

// BrowserPool manages a shared pool of headless browser instances used by the
// PDF export pipeline
type BrowserPool struct {
	config            *config.Config
	launcher          *launcher.Launcher
	browsers          []*ManagedBrowser
	availableBrowsers chan *ManagedBrowser
	mu                sync.RWMutex
	maxInstances      int
	currentInstances  int
	logger            types.Logger
	ctx               context.Context
	cancel            context.CancelFunc
	cleanupTicker     *time.Ticker
}

// ManagedBrowser represents a browser instance with lifecycle management
type ManagedBrowser struct {
	Browser     *rod.Browser
	ID          string
	CreatedAt   time.Time
	LastUsedAt  time.Time
	InUse       bool
	UsageCount  int
	MaxIdleTime time.Duration
	mu          sync.RWMutex
}

// BrowserInstance is one acquired browser with a fresh page
type BrowserInstance struct {
	Browser *ManagedBrowser
	Page    *rod.Page
	pool    *BrowserPool
}

var (
	globalPool *BrowserPool
	poolOnce   sync.Once
)

// InitializeBrowserPool initializes the shared browser pool (call once at startup)
func InitializeBrowserPool(cfg *config.Config) error {
	poolOnce.Do(func() {
		logger := logging.GetGlobalLogger()

		maxInstances := cfg.BrowserPool.MaxBrowsers
		if maxInstances < 1 {
			maxInstances = 1
		}

		l := launcher.New().
			Headless(true).
			NoSandbox(true).
			Set("disable-dev-shm-usage").
			Set("disable-gpu").
			Set("no-first-run").
			Set("no-default-browser-check").
			Set("disable-background-networking")

		// Use system-installed Chrome/Chromium instead of downloading
		if chromePath := systemChromePath(); chromePath != "" {
			l = l.Bin(chromePath)
			logger.Info("Browser pool using system Chrome", map[string]interface{}{
				"chrome_path":   chromePath,
				"max_instances": maxInstances,
			})
		} else {
			logger.Warn("System Chrome not found, Rod will download browser", map[string]interface{}{
				"max_instances": maxInstances,
			})
		}

		ctx, cancel := context.WithCancel(context.Background())

		globalPool = &BrowserPool{
			config:            cfg,
			launcher:          l,
			browsers:          make([]*ManagedBrowser, 0, maxInstances),
			availableBrowsers: make(chan *ManagedBrowser, maxInstances),
			maxInstances:      maxInstances,
			logger:            logger,
			ctx:               ctx,
			cancel:            cancel,
		}
		globalPool.startCleanupRoutine()

		logger.Info("Browser pool initialized", map[string]interface{}{
			"max_instances": maxInstances,
		})
	})

	if globalPool == nil {
		return fmt.Errorf("failed to initialize browser pool")
	}
	return nil
}

// GetBrowserPool returns the shared browser pool instance
func GetBrowserPool() (*BrowserPool, error) {
	if globalPool == nil {
		return nil, fmt.Errorf("browser pool not initialized - call InitializeBrowserPool first")
	}
	return globalPool, nil
}

// Acquire gets a browser instance with a fresh page, waiting up to the
// configured acquisition timeout
func (bp *BrowserPool) Acquire(ctx context.Context) (*BrowserInstance, error) {
	select {
	case managed := <-bp.availableBrowsers:
		if bp.isManagedBrowserHealthy(managed) {
			return bp.createInstance(managed)
		}
		bp.closeManagedBrowser(managed)
	case <-time.After(1 * time.Second):
		// no idle browser, try to create one
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	bp.mu.Lock()
	if bp.currentInstances < bp.maxInstances {
		bp.currentInstances++
		bp.mu.Unlock()

		managed, err := bp.createManagedBrowser()
		if err != nil {
			bp.mu.Lock()
			bp.currentInstances--
			bp.mu.Unlock()
			return nil, fmt.Errorf("failed to create browser: %w", err)
		}
		return bp.createInstance(managed)
	}
	bp.mu.Unlock()

	bp.logger.Warn("Browser pool exhausted, waiting for available instance", map[string]interface{}{
		"max_instances": bp.maxInstances,
	})

	waitCtx, cancel := context.WithTimeout(ctx, bp.config.BrowserPool.AcquisitionTimeout)
	defer cancel()

	select {
	case managed := <-bp.availableBrowsers:
		if bp.isManagedBrowserHealthy(managed) {
			return bp.createInstance(managed)
		}
		bp.closeManagedBrowser(managed)
		return nil, fmt.Errorf("acquired unhealthy browser, pool needs cleanup")
	case <-waitCtx.Done():
		return nil, fmt.Errorf("timeout waiting for browser instance")
	}
}

// Release returns the browser to the pool, closing the page it carried
func (bi *BrowserInstance) Release() {
	if bi.Page != nil {
		_ = bi.Page.Close()
	}

	managed := bi.Browser
	managed.mu.Lock()
	managed.InUse = false
	managed.LastUsedAt = time.Now()
	managed.UsageCount++
	managed.mu.Unlock()

	select {
	case bi.pool.availableBrowsers <- managed:
		bi.pool.logger.Debug("Browser returned to pool", map[string]interface{}{
			"browser_id":  managed.ID,
			"usage_count": managed.UsageCount,
		})
	default:
		bi.pool.logger.Warn("Browser pool full, closing browser", map[string]interface{}{
			"browser_id": managed.ID,
		})
		bi.pool.closeManagedBrowser(managed)
	}
}

func (bp *BrowserPool) createManagedBrowser() (*ManagedBrowser, error) {
	browserCtx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	url, err := bp.launcher.Context(browserCtx).Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().Context(browserCtx).ControlURL(url)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	managed := &ManagedBrowser{
		Browser:     browser,
		ID:          fmt.Sprintf("browser-%d", time.Now().UnixNano()),
		CreatedAt:   time.Now(),
		LastUsedAt:  time.Now(),
		MaxIdleTime: 5 * time.Minute,
	}

	bp.mu.Lock()
	bp.browsers = append(bp.browsers, managed)
	bp.mu.Unlock()

	bp.logger.Info("New managed browser created", map[string]interface{}{
		"browser_id":        managed.ID,
		"current_instances": bp.currentInstances,
	})
	return managed, nil
}

func (bp *BrowserPool) createInstance(managed *ManagedBrowser) (*BrowserInstance, error) {
	pageCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	page, err := managed.Browser.Context(pageCtx).Page(proto.TargetCreateTarget{})
	if err != nil {
		bp.closeManagedBrowser(managed)
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	managed.mu.Lock()
	managed.InUse = true
	managed.LastUsedAt = time.Now()
	managed.mu.Unlock()

	return &BrowserInstance{Browser: managed, Page: page, pool: bp}, nil
}

func (bp *BrowserPool) isManagedBrowserHealthy(managed *ManagedBrowser) bool {
	if managed.Browser == nil {
		return false
	}
	_, err := managed.Browser.Pages()
	return err == nil
}

func (bp *BrowserPool) closeManagedBrowser(managed *ManagedBrowser) {
	if managed.Browser != nil {
		if err := managed.Browser.Close(); err != nil {
			bp.logger.Warn("Failed to gracefully close browser", map[string]interface{}{
				"browser_id": managed.ID,
				"error":      err.Error(),
			})
		}
	}

	bp.mu.Lock()
	for i, browser := range bp.browsers {
		if browser.ID == managed.ID {
			bp.browsers = append(bp.browsers[:i], bp.browsers[i+1:]...)
			break
		}
	}
	bp.currentInstances--
	bp.mu.Unlock()

	bp.logger.Info("Managed browser closed", map[string]interface{}{
		"browser_id":        managed.ID,
		"current_instances": bp.currentInstances,
		"usage_count":       managed.UsageCount,
	})
}

func (bp *BrowserPool) startCleanupRoutine() {
	bp.cleanupTicker = time.NewTicker(1 * time.Minute)

	go func() {
		defer bp.cleanupTicker.Stop()
		for {
			select {
			case <-bp.cleanupTicker.C:
				bp.cleanupIdleBrowsers()
			case <-bp.ctx.Done():
				return
			}
		}
	}()
}

func (bp *BrowserPool) cleanupIdleBrowsers() {
	now := time.Now()
	var toClose []*ManagedBrowser

	bp.mu.RLock()
	for _, browser := range bp.browsers {
		browser.mu.RLock()
		isIdle := !browser.InUse && now.Sub(browser.LastUsedAt) > browser.MaxIdleTime
		isStuck := browser.InUse && now.Sub(browser.LastUsedAt) > 10*time.Minute
		browser.mu.RUnlock()

		if isIdle || isStuck || !bp.isManagedBrowserHealthy(browser) {
			toClose = append(toClose, browser)
		}
	}
	bp.mu.RUnlock()

	for _, browser := range toClose {
		bp.logger.Info("Closing idle or stuck browser", map[string]interface{}{
			"browser_id": browser.ID,
			"last_used":  browser.LastUsedAt,
		})
		bp.closeManagedBrowser(browser)
	}
}

// Shutdown gracefully shuts down the browser pool
func (bp *BrowserPool) Shutdown(ctx context.Context) error {
	bp.logger.Info("Shutting down browser pool")
	bp.cancel()

	if bp.cleanupTicker != nil {
		bp.cleanupTicker.Stop()
	}

	done := make(chan struct{})
	go func() {
		bp.mu.Lock()
		browsers := make([]*ManagedBrowser, len(bp.browsers))
		copy(browsers, bp.browsers)
		bp.mu.Unlock()

		for _, browser := range browsers {
			bp.closeManagedBrowser(browser)
		}
		close(done)
	}()

	select {
	case <-done:
		bp.logger.Info("All browsers closed gracefully")
	case <-ctx.Done():
		bp.logger.Warn("Browser shutdown timed out, some browsers may still be running")
	case <-time.After(30 * time.Second):
		bp.logger.Warn("Browser shutdown took too long, forcing completion")
	}

	bp.launcher.Cleanup()
	return nil
}

// IsHealthy checks if the browser pool is healthy
func (bp *BrowserPool) IsHealthy() bool {
	bp.mu.RLock()
	defer bp.mu.RUnlock()
	return bp.ctx.Err() == nil && bp.currentInstances >= 0
}

// systemChromePath finds an installed Chrome/Chromium binary
func systemChromePath() string {
	if chromeBin := os.Getenv("CHROME_BIN"); chromeBin != "" {
		if _, err := os.Stat(chromeBin); err == nil {
			return chromeBin
		}
	}
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	commonPaths := []string{
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/opt/google/chrome/chrome",
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
	}
	for _, path := range commonPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
