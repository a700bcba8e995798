package athlete

import (
	"time"

	"github.com/google/uuid"
)

// Athlete is the owner of training sessions. Profile management beyond this
// registry lives in the dashboard, not here.
type Athlete struct {
	Id        uuid.UUID
	Name      string
	Sport     string
	CreatedAt time.Time
}
