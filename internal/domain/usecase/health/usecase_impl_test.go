package health

import (
	"testing"

	"todo-api/internal/domain/model"
	"todo-api/pkg/sqs"

	"github.com/stretchr/testify/assert"
)

type stubHealthGateway struct {
	status model.HealthStatus
}

func (s stubHealthGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: s.status}
}

func (s stubHealthGateway) RegisterWorker(name string, worker *sqs.Worker) {}

func (s stubHealthGateway) UnregisterWorker(name string) {}

func TestCheckHealthAllUp(t *testing.T) {
	useCase := NewHealthUseCase(
		stubHealthGateway{model.StatusUp},
		stubHealthGateway{model.StatusUp},
		stubHealthGateway{model.StatusUp},
	)

	response := useCase.CheckHealth()

	assert.Equal(t, model.StatusUp, response.Status)
	assert.Equal(t, model.StatusUp, response.Database.Status)
}

func TestCheckHealthComponentDown(t *testing.T) {
	useCase := NewHealthUseCase(
		stubHealthGateway{model.StatusUp},
		stubHealthGateway{model.StatusDown},
		stubHealthGateway{model.StatusUp},
	)

	response := useCase.CheckHealth()

	assert.Equal(t, model.StatusDown, response.Status)
	assert.Equal(t, model.StatusDown, response.Cache.Status)
}

func TestCheckHealthUnknownStaysUp(t *testing.T) {
	useCase := NewHealthUseCase(
		stubHealthGateway{model.StatusUp},
		stubHealthGateway{model.StatusUp},
		stubHealthGateway{model.StatusUnknown},
	)

	response := useCase.CheckHealth()

	assert.Equal(t, model.StatusUp, response.Status)
	assert.Equal(t, model.StatusUnknown, response.Queue.Status)
}
