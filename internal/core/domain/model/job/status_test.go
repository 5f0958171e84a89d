package job_test

import (
	"testing"

	"logistics/internal/core/domain/model/job"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name       string
		hasVehicle bool
		completed  bool
		want       job.Status
	}{
		{"no vehicle and open", false, false, job.Unassigned},
		{"vehicle and open", true, false, job.Assigned},
		{"vehicle and completed", true, true, job.Completed},
		{"completed wins", false, true, job.Completed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, job.StatusOf(tt.hasVehicle, tt.completed))
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "unknown", job.Unknown.String())
	assert.Equal(t, "unassigned", job.Unassigned.String())
	assert.Equal(t, "assigned", job.Assigned.String())
	assert.Equal(t, "completed", job.Completed.String())
	assert.Equal(t, "unknown", job.Status(42).String())
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, job.Unassigned.Validate())
	require.NoError(t, job.Assigned.Validate())
	require.NoError(t, job.Completed.Validate())

	require.Error(t, job.Unknown.Validate())
	require.Error(t, job.Status(-1).Validate())
	require.Error(t, job.Status(4).Validate())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, job.Unassigned.IsTerminal())
	assert.False(t, job.Assigned.IsTerminal())
	assert.True(t, job.Completed.IsTerminal())
}
