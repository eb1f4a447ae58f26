package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"resumelens/internal/models"
	"resumelens/internal/repositories"
)

type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueJob(analysisID uuid.UUID)
}

type worker struct {
	analysisRepo repositories.AnalysisRepository
	analyzer     AnalyzerService
	jobQueue     chan uuid.UUID
	concurrency  int
	wg           sync.WaitGroup
	stopChan     chan struct{}
}

func NewWorker(
	analysisRepo repositories.AnalysisRepository,
	analyzer AnalyzerService,
	concurrency int,
) Worker {
	return &worker{
		analysisRepo: analysisRepo,
		analyzer:     analyzer,
		jobQueue:     make(chan uuid.UUID, 100),
		concurrency:  concurrency,
		stopChan:     make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting worker with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	// Re-enqueue jobs left queued across restarts
	w.wg.Add(1)
	go w.pollPendingJobs(ctx)
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Println("🛑 Stopping worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Worker stopped")
}

// EnqueueJob implements Worker.
func (w *worker) EnqueueJob(analysisID uuid.UUID) {
	select {
	case w.jobQueue <- analysisID:
		log.Printf("📥 Analysis %s enqueued\n", analysisID)
	case <-w.stopChan:
		log.Printf("⚠️  Worker stopped, cannot enqueue analysis %s\n", analysisID)
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case analysisID := <-w.jobQueue:
			log.Printf("👷 Worker #%d processing analysis %s\n", workerID, analysisID)
			if err := w.runAnalysis(ctx, analysisID); err != nil {
				log.Printf("❌ Worker #%d failed analysis %s: %v\n", workerID, analysisID, err)
			} else {
				log.Printf("✅ Worker #%d completed analysis %s\n", workerID, analysisID)
			}
		}
	}
}

func (w *worker) runAnalysis(ctx context.Context, analysisID uuid.UUID) error {
	if err := w.analysisRepo.UpdateStatus(analysisID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	analysis, err := w.analysisRepo.FindByID(analysisID)
	if err != nil {
		w.analysisRepo.UpdateError(analysisID, err.Error())
		return fmt.Errorf("failed to get analysis: %w", err)
	}

	result, err := w.analyzer.Analyze(ctx, &models.AnalysisRequest{
		ResumeText:     analysis.ResumeText,
		JobDescription: analysis.JobDescription,
	})
	if err != nil {
		w.analysisRepo.UpdateError(analysisID, err.Error())
		return fmt.Errorf("analysis failed: %w", err)
	}

	update, err := BuildAnalysisUpdate(result)
	if err != nil {
		w.analysisRepo.UpdateError(analysisID, err.Error())
		return err
	}

	if err := w.analysisRepo.UpdateResult(analysisID, update); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

// BuildAnalysisUpdate flattens an analysis result into the column shape the
// repository stores, with the bullet lists serialized as JSON text.
func BuildAnalysisUpdate(result *models.AnalysisResponse) (*repositories.AnalysisUpdateData, error) {
	strengths, err := json.Marshal(result.Strengths)
	if err != nil {
		return nil, fmt.Errorf("failed to encode strengths: %w", err)
	}

	weaknesses, err := json.Marshal(result.Weaknesses)
	if err != nil {
		return nil, fmt.Errorf("failed to encode weaknesses: %w", err)
	}

	strengthsStr := string(strengths)
	weaknessesStr := string(weaknesses)

	return &repositories.AnalysisUpdateData{
		ResumeScore:     &result.ResumeScore,
		MatchPercentage: result.MatchPercentage,
		Strengths:       &strengthsStr,
		Weaknesses:      &weaknessesStr,
	}, nil
}

func (w *worker) pollPendingJobs(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ticker.C:
			pendingJobs, err := w.analysisRepo.FindPendingJobs(10)
			if err != nil {
				log.Printf("⚠️  Failed to fetch pending jobs: %v\n", err)
				continue
			}

			for _, job := range pendingJobs {
				w.EnqueueJob(job.ID)
			}
		}
	}
}
