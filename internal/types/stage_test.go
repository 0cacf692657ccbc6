package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStage_Valid(t *testing.T) {
	for _, stage := range Stages() {
		assert.True(t, stage.Valid(), "stage %s should be valid", stage)
	}

	assert.False(t, Stage("").Valid())
	assert.False(t, Stage("applied").Valid())
	assert.False(t, Stage("GHOSTED").Valid())
}

func TestStage_Order(t *testing.T) {
	assert.Equal(t, 0, StageInterested.Order())
	assert.Equal(t, 3, StageInterview.Order())
	assert.Equal(t, 5, StageClosed.Order())
	assert.Equal(t, -1, Stage("GHOSTED").Order())
}

func TestStages_ProgressionOrder(t *testing.T) {
	stages := Stages()
	assert.Len(t, stages, 6)
	for i, stage := range stages {
		assert.Equal(t, i, stage.Order())
	}
}

func TestWorkMode_Valid(t *testing.T) {
	assert.True(t, WorkModeRemote.Valid())
	assert.True(t, WorkModeHybrid.Valid())
	assert.True(t, WorkModeOnsite.Valid())
	assert.False(t, WorkMode("remote").Valid())
	assert.False(t, WorkMode("").Valid())
}
