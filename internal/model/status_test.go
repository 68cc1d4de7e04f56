package model

import "testing"

func TestSyncStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   SyncStatus
		expected bool
	}{
		{SyncStatusPending, false},
		{SyncStatusRunning, true},
		{SyncStatusCancelling, true},
		{SyncStatusCancelled, false},
		{SyncStatusCompleted, false},
		{SyncStatusFailed, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("SyncStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestSyncStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   SyncStatus
		expected bool
	}{
		{SyncStatusPending, false},
		{SyncStatusRunning, false},
		{SyncStatusCancelling, false},
		{SyncStatusCancelled, true},
		{SyncStatusCompleted, true},
		{SyncStatusFailed, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("SyncStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestSyncStatus_String(t *testing.T) {
	status := SyncStatusCancelled
	expected := "Cancelled"
	result := status.String()

	if result != expected {
		t.Errorf("SyncStatus.String() = %s, expected %s", result, expected)
	}
}
