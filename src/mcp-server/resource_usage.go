// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/H0llyW00dzZ/tls-cert-metadata/src/chunk"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/report"
)

// extractionStats counts what the extraction tools produced since start-up.
type extractionStats struct {
	certificates atomic.Int64
	found        atomic.Int64
	notFound     atomic.Int64
	tooSmall     atomic.Int64
}

// stats is shared by every tool handler of the process.
var stats extractionStats

// record adds the field statuses of r to the counters.
func (s *extractionStats) record(r *report.Report) {
	s.certificates.Add(1)
	for _, f := range r.Fields {
		switch f.Status {
		case chunk.StatusFound:
			s.found.Add(1)
		case chunk.StatusTooSmall:
			s.tooSmall.Add(1)
		default:
			s.notFound.Add(1)
		}
	}
}

// ResourceUsageData represents the complete resource usage information
type ResourceUsageData struct {
	Timestamp   string         `json:"timestamp"`
	MemoryUsage map[string]any `json:"memory_usage"`
	GCStats     map[string]any `json:"gc_stats"`
	SystemInfo  map[string]any `json:"system_info"`
	Extraction  map[string]any `json:"extraction,omitempty"`
}

// CollectResourceUsage gathers current resource usage statistics. With
// detailed set, the extraction counters are included.
func CollectResourceUsage(detailed bool) *ResourceUsageData {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	data := &ResourceUsageData{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		MemoryUsage: map[string]any{
			"heap_alloc_mb":  float64(memStats.HeapAlloc) / (1024 * 1024),
			"heap_sys_mb":    float64(memStats.HeapSys) / (1024 * 1024),
			"heap_inuse_mb":  float64(memStats.HeapInuse) / (1024 * 1024),
			"heap_objects":   memStats.HeapObjects,
			"stack_inuse_mb": float64(memStats.StackInuse) / (1024 * 1024),
		},
		GCStats: map[string]any{
			"num_gc":          memStats.NumGC,
			"num_forced_gc":   memStats.NumForcedGC,
			"gc_cpu_fraction": memStats.GCCPUFraction,
		},
		SystemInfo: map[string]any{
			"go_version":    runtime.Version(),
			"go_os":         runtime.GOOS,
			"go_arch":       runtime.GOARCH,
			"num_cpu":       runtime.NumCPU(),
			"num_goroutine": runtime.NumGoroutine(),
		},
	}

	if detailed {
		data.Extraction = map[string]any{
			"certificates":     stats.certificates.Load(),
			"fields_found":     stats.found.Load(),
			"fields_not_found": stats.notFound.Load(),
			"fields_too_small": stats.tooSmall.Load(),
		}
	}

	return data
}

// FormatResourceUsageAsJSON formats resource usage data as indented JSON.
func FormatResourceUsageAsJSON(data *ResourceUsageData) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal resource usage: %w", err)
	}
	return string(jsonData), nil
}

// FormatResourceUsageAsMarkdown formats resource usage data as markdown tables.
func FormatResourceUsageAsMarkdown(data *ResourceUsageData) (string, error) {
	buf := gc.Default.Get()
	defer gc.Default.Put(buf)

	fmt.Fprintf(buf, "# Resource Usage Report\n\n_Generated: %s_\n", data.Timestamp)

	sections := []struct {
		title  string
		values map[string]any
		keys   []string
	}{
		{"System", data.SystemInfo, []string{"go_version", "go_os", "go_arch", "num_cpu", "num_goroutine"}},
		{"Memory", data.MemoryUsage, []string{"heap_alloc_mb", "heap_sys_mb", "heap_inuse_mb", "heap_objects", "stack_inuse_mb"}},
		{"Garbage Collection", data.GCStats, []string{"num_gc", "num_forced_gc", "gc_cpu_fraction"}},
		{"Extraction", data.Extraction, []string{"certificates", "fields_found", "fields_not_found", "fields_too_small"}},
	}
	for _, sec := range sections {
		if sec.values == nil {
			continue
		}
		fmt.Fprintf(buf, "\n## %s\n\n", sec.title)
		if err := formatMarkdownTable(buf, sec.values, sec.keys); err != nil {
			return "", err
		}
	}

	return buf.String(), nil
}

// formatMarkdownTable writes the values named by keys as a two-column table.
func formatMarkdownTable(w io.Writer, values map[string]any, keys []string) error {
	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		if value, ok := values[key]; ok {
			rows = append(rows, []string{key, formatValueForMarkdown(value)})
		}
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Metric", "Value"})
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to append resource usage rows: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render resource usage table: %w", err)
	}
	return nil
}

// formatValueForMarkdown formats a value for markdown display
func formatValueForMarkdown(value any) string {
	switch v := value.(type) {
	case float64:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
