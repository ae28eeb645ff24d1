package repository

import (
	"github.com/deppfellow/visitor-log/internal/server"
)

// Repositories is a container for all repository instances.
//
// Services receive the whole container so adding a repository does not change
// their constructors.
type Repositories struct {
	Visitor *VisitorRepository
}

// NewRepositories constructs the repository container on top of the shared
// connection pool held by the server.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Visitor: NewVisitorRepository(s.DB.Pool),
	}
}
