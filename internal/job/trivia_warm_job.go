package job

import (
	"Pulse/internal/pkg/logger"
	"Pulse/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// TriviaWarmJob 每日零点后重算趣闻卡片，避开首个请求的慢路径
type TriviaWarmJob struct {
	triviaSvc service.TriviaService
}

func NewTriviaWarmJob(triviaSvc service.TriviaService) *TriviaWarmJob {
	return &TriviaWarmJob{
		triviaSvc: triviaSvc,
	}
}

func (s *TriviaWarmJob) Run() {
	traceID := "job-trivia-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	log.InfoContext(ctx, "start trivia warm job")
	if err := s.triviaSvc.Refresh(ctx); err != nil {
		log.ErrorContext(ctx, "trivia warm job failed", "err", err)
		return
	}
	log.InfoContext(ctx, "trivia warm job finished")
}
