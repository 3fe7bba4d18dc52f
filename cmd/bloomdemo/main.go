// Command bloomdemo exercises the filter family: it inserts a
// mixed-type item set into a sized and a scalable filter, reports
// member and non-member query results, then bulk-inserts distinct
// items to drive the scalable filter through several growth events.
// With -metrics it keeps running and serves Prometheus metrics.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bloom "github.com/whong92/bloomfilter"
	"github.com/whong92/bloomfilter/internal/logger"
)

func main() {
	cap0 := flag.Int("cap", 100, "initial filter capacity")
	fpr := flag.Float64("fpr", 0.1, "target false positive rate")
	bulk := flag.Int("bulk", 1000, "distinct items to bulk-insert into the scalable filter")
	metricsAddr := flag.String("metrics", "", "serve Prometheus metrics on this address (e.g. :9090)")
	flag.Parse()
	logger.Setup("bloomdemo")

	members := []any{"hello", "world", [3]int{9, 0, 0}, 3, 66.6, -90.2}
	strangers := []any{"goodbye", "universe", [3]int{4, 0, 0}, 1, -66.6, 90.2}

	sized, err := bloom.NewSized(*cap0, *fpr)
	if err != nil {
		slog.Error("sized filter", "error", err)
		os.Exit(1)
	}
	report("sized", sized, members, strangers)

	scalable, err := bloom.NewScalable(*cap0, *fpr)
	if err != nil {
		slog.Error("scalable filter", "error", err)
		os.Exit(1)
	}

	var filter bloom.Filter = scalable
	if *metricsAddr != "" {
		reg := prometheus.NewRegistry()
		filter = bloom.Instrument(scalable, bloom.NewMetrics(reg))
		go serveMetrics(*metricsAddr, reg)
	}
	report("scalable", filter, members, strangers)

	for i := 0; i < *bulk; i++ {
		if err := filter.Add(fmt.Sprintf("item-%06d", i)); err != nil {
			slog.Error("bulk insert", "error", err)
			os.Exit(1)
		}
	}
	slog.Info("bulk insert done",
		"items", *bulk,
		"stages", scalable.Len(),
		"capacity", scalable.Capacity(),
		"bitsSet", scalable.SetBits(),
		"estimatedItems", scalable.EstimatedItems(),
	)

	if *metricsAddr != "" {
		slog.Info("serving metrics", "addr", *metricsAddr)
		select {}
	}
}

func report(name string, f bloom.Filter, members, strangers []any) {
	for _, item := range members {
		if err := f.Add(item); err != nil {
			slog.Error("add", "filter", name, "item", item, "error", err)
			os.Exit(1)
		}
	}
	for _, item := range members {
		ok, err := f.Query(item)
		if err != nil {
			slog.Error("query", "filter", name, "item", item, "error", err)
			os.Exit(1)
		}
		if !ok {
			slog.Error("false negative", "filter", name, "item", item)
			os.Exit(1)
		}
		slog.Info("member present", "filter", name, "item", item)
	}
	for _, item := range strangers {
		ok, err := f.Query(item)
		if err != nil {
			slog.Error("query", "filter", name, "item", item, "error", err)
			os.Exit(1)
		}
		if ok {
			slog.Warn("false positive", "filter", name, "item", item)
			continue
		}
		slog.Info("non-member absent", "filter", name, "item", item)
	}
}

func serveMetrics(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("metrics server", "error", err)
	}
}
