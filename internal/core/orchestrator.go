package core

import (
	"fmt"
	"sync"
	"time"

	"github.com/MusaBangash/MLB-Major-League-Baseball/internal/models"
	"github.com/MusaBangash/MLB-Major-League-Baseball/internal/scraper"
	"github.com/MusaBangash/MLB-Major-League-Baseball/internal/sink"
	"github.com/MusaBangash/MLB-Major-League-Baseball/internal/utils"
)

// CategoryResult records one category worker's outcome.
type CategoryResult struct {
	Category    string    `json:"category"`
	Records     int       `json:"records"`
	Success     bool      `json:"success"`
	Error       string    `json:"error,omitempty"`
	ProcessedAt time.Time `json:"processed_at"`
	Duration    float64   `json:"duration"`
}

// RunSummary aggregates an entire scrape run.
type RunSummary struct {
	TotalCategories int              `json:"total_categories"`
	SuccessCount    int              `json:"success_count"`
	FailCount       int              `json:"fail_count"`
	TotalRecords    int              `json:"total_records"`
	TotalDuration   float64          `json:"total_duration"`
	Results         []CategoryResult `json:"results"`
}

// Orchestrator fans the selected categories out over a bounded pool of
// category workers. Each worker owns its session, channel and output file
// by construction; a failing category never cancels its siblings.
type Orchestrator struct {
	config     *Config
	newSession func() (scraper.Session, error)
}

// NewOrchestrator builds an orchestrator over the loaded configuration.
func NewOrchestrator(config *Config) *Orchestrator {
	return &Orchestrator{
		config: config,
		newSession: func() (scraper.Session, error) {
			return scraper.NewRodSession(config.Scrape.Headless)
		},
	}
}

// Run scrapes every selected category, at most workers at a time, and
// blocks until all have completed or failed.
func (o *Orchestrator) Run(categories []models.StatCategory, workers int) *RunSummary {
	start := time.Now()
	workers = ClampWorkers(workers)

	utils.Infof("starting scrape: %d categories, %d parallel scraper(s)", len(categories), workers)

	summary := &RunSummary{
		TotalCategories: len(categories),
		Results:         make([]CategoryResult, len(categories)),
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, category := range categories {
		wg.Add(1)
		go func(slot int, category models.StatCategory) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			summary.Results[slot] = o.runCategory(category)
		}(i, category)
	}
	wg.Wait()

	for _, r := range summary.Results {
		if r.Success {
			summary.SuccessCount++
		} else {
			summary.FailCount++
		}
		summary.TotalRecords += r.Records
	}
	summary.TotalDuration = time.Since(start).Seconds()

	utils.Infof("all scraping tasks completed: %d ok, %d failed, %d records in %.1fs",
		summary.SuccessCount, summary.FailCount, summary.TotalRecords, summary.TotalDuration)
	return summary
}

// runCategory runs one worker/sink pair to completion. Panics in the worker
// are confined to this category's result.
func (o *Orchestrator) runCategory(category models.StatCategory) CategoryResult {
	start := time.Now()
	job := models.NewCategoryJob(category, o.config.Output.BaseDir, o.config.Scrape.Games)

	records := make(chan models.PropRecord, 64)

	// Single consumer per output file: the sink exclusively owns the write.
	written := make(chan int, 1)
	go func() {
		written <- sink.NewCSVSink(job.OutputPath).Drain(records)
	}()

	worker := &scraper.CategoryWorker{
		CatalogURL: o.config.Scrape.CatalogURL,
		NewSession: o.newSession,
	}

	err := o.guardedRun(worker, job, records)
	count := <-written

	result := CategoryResult{
		Category:    category.Name,
		Records:     count,
		Success:     err == nil,
		ProcessedAt: time.Now(),
		Duration:    time.Since(start).Seconds(),
	}
	if err != nil {
		result.Error = err.Error()
		utils.Errorf("category %s failed: %v", category.Name, err)
	} else {
		utils.Infof("completed processing for %s: %d record(s)", category.Name, count)
	}
	return result
}

// guardedRun converts worker panics into category-fatal errors so siblings
// keep running. The worker closes the record channel on its own way out,
// panicking or not, so the sink always terminates.
func (o *Orchestrator) guardedRun(worker *scraper.CategoryWorker, job models.CategoryJob, records chan models.PropRecord) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: worker panic: %v", job.Category.Name, r)
		}
	}()
	return worker.Run(job, records)
}
