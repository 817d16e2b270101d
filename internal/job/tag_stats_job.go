package job

import (
	"Nokoroa/internal/pkg/logger"
	"Nokoroa/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// TagStatsJob 周期性重建标签使用次数缓存，避免首个请求承担聚合开销。
type TagStatsJob struct {
	postSvc service.PostService
}

func NewTagStatsJob(postSvc service.PostService) *TagStatsJob {
	return &TagStatsJob{postSvc: postSvc}
}

func (s *TagStatsJob) Run() {
	traceID := "job-tag-stats-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	stats, err := s.postSvc.RefreshTagStats(ctx)
	if err != nil {
		log.ErrorContext(ctx, "refresh tag stats error", "err", err)
		return
	}
	log.InfoContext(ctx, "tag stats cache refreshed", "tag_count", len(stats))
}
