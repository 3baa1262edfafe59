package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTask_MarshalJSON(t *testing.T) {
	task := &Task{
		ID:          "t-1",
		UserID:      "u-1",
		Text:        "milk",
		Completed:   true,
		CreatedDate: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		UpdatedDate: time.Date(2024, 3, 1, 13, 0, 0, 5_000_000, time.FixedZone("X", 3600)),
	}

	b, err := json.Marshal(task)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "t-1",
		"userId": "u-1",
		"text": "milk",
		"completed": true,
		"isEditing": false,
		"createdDate": "2024-03-01T12:00:00.000Z",
		"updatedDate": "2024-03-01T12:00:00.005Z"
	}`, string(b))

	var back Task
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.UpdatedDate.Equal(task.UpdatedDate))
}

func TestUser_HidesPasswordHash(t *testing.T) {
	b, err := json.Marshal(User{ID: "u-1", UserName: "alice", PasswordHash: "secret"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret")
}
