package service

import (
	"github.com/deppfellow/visitor-log/internal/lib/job"
	"github.com/deppfellow/visitor-log/internal/repository"
	"github.com/deppfellow/visitor-log/internal/server"
)

type Services struct {
	Visitor *VisitorService
	Job     *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	// Arrival emails are optional; a nil notifier turns them off.
	var notifier VisitorNotifier
	if s.Job != nil && s.Config.Notification.Enabled {
		notifier = s.Job
	}

	return &Services{
		Visitor: NewVisitorService(s.Logger, repos.Visitor, notifier),
		Job:     s.Job,
	}, nil
}
