package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Debug mode configuration
var (
	DebugEnabled bool
	DebugLog     *log.Logger
	debugLogFile *os.File
)

var debugLogFileName = filepath.Join(os.TempDir(), "hermesgcs-debug.log")

// InitDebug initializes debug logging if HERMES_DEBUG=1 is set.
// Called from Initialize.
func InitDebug() {
	if os.Getenv("HERMES_DEBUG") != "1" {
		// No-op logger so trace helpers never nil-deref.
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugEnabled = true

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		if ErrorLog != nil {
			ErrorLog.Printf("could not open debug log file: %s", err)
		}
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugLog = log.New(f, "DEBUG:", log.Ldate|log.Ltime|log.Lmicroseconds)
	debugLogFile = f

	DebugLog.Println("Debug mode enabled")
	DebugLog.Printf("Debug log: %s", debugLogFileName)
}

// CloseDebug closes the debug log file.
func CloseDebug() {
	if debugLogFile != nil {
		_ = debugLogFile.Close()
		fmt.Println("wrote debug logs to " + debugLogFileName)
	}
}

// InputTrace logs pointer and key handling events.
func InputTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[INPUT] "+format, v...)
	}
}

// LayoutTrace logs geometry and layout computation events.
func LayoutTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[LAYOUT] "+format, v...)
	}
}

// RenderTrace logs render events for a component.
func RenderTrace(component, format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		msg := fmt.Sprintf(format, v...)
		DebugLog.Printf("[RENDER:%s] %s", component, msg)
	}
}

// FrameProfiler tracks view rendering performance.
type FrameProfiler struct {
	mu         sync.RWMutex
	components map[string]*componentMetrics
	frameCount int64
	totalTime  time.Duration
	timings    []time.Duration // rolling window of frame times
}

type componentMetrics struct {
	name        string
	renderCount int64
	totalTime   time.Duration
	minTime     time.Duration
	maxTime     time.Duration
}

var profiler = &FrameProfiler{
	components: make(map[string]*componentMetrics),
	timings:    make([]time.Duration, 0, 100),
}

// GetProfiler returns the global frame profiler.
func GetProfiler() *FrameProfiler {
	return profiler
}

// StartRender begins timing a component render. Call the returned function
// when the render completes.
func (p *FrameProfiler) StartRender(component string) func() {
	if !DebugEnabled {
		return func() {}
	}
	start := time.Now()
	return func() {
		p.recordRender(component, time.Since(start))
	}
}

func (p *FrameProfiler) recordRender(component string, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, ok := p.components[component]
	if !ok {
		m = &componentMetrics{name: component, minTime: elapsed, maxTime: elapsed}
		p.components[component] = m
	}
	m.renderCount++
	m.totalTime += elapsed
	if elapsed < m.minTime {
		m.minTime = elapsed
	}
	if elapsed > m.maxTime {
		m.maxTime = elapsed
	}
}

// RecordFrame records a complete view render.
func (p *FrameProfiler) RecordFrame(elapsed time.Duration) {
	if !DebugEnabled {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.frameCount++
	p.totalTime += elapsed

	if len(p.timings) >= 100 {
		p.timings = p.timings[1:]
	}
	p.timings = append(p.timings, elapsed)

	// 16ms is the 60fps budget
	if elapsed > 16*time.Millisecond && DebugLog != nil {
		DebugLog.Printf("SLOW FRAME: %v", elapsed)
	}
}

// Stats returns a summary of render statistics.
func (p *FrameProfiler) Stats() string {
	if !DebugEnabled {
		return ""
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	var sb strings.Builder
	sb.WriteString("\n=== Frame Profile ===\n")
	sb.WriteString(fmt.Sprintf("Total frames: %d\n", p.frameCount))
	if p.frameCount > 0 {
		avg := p.totalTime / time.Duration(p.frameCount)
		sb.WriteString(fmt.Sprintf("Avg frame time: %v\n", avg))
	}

	var sorted []*componentMetrics
	for _, m := range p.components {
		sorted = append(sorted, m)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].totalTime > sorted[j].totalTime
	})
	for _, m := range sorted {
		avg := time.Duration(0)
		if m.renderCount > 0 {
			avg = m.totalTime / time.Duration(m.renderCount)
		}
		sb.WriteString(fmt.Sprintf("  %s: count=%d total=%v avg=%v min=%v max=%v\n",
			m.name, m.renderCount, m.totalTime, avg, m.minTime, m.maxTime))
	}

	return sb.String()
}

// LogStats writes the current statistics to the debug log.
func (p *FrameProfiler) LogStats() {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Print(p.Stats())
	}
}
