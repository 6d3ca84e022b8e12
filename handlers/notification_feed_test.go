package handlers

import (
	"testing"

	"github.com/Chell2003/payment-nexus-dashboard/models"
)

func TestStatusBadge(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{status: models.RequestStatusPending, want: "warning"},
		{status: models.RequestStatusApproved, want: "success"},
		{status: models.RequestStatusRejected, want: "destructive"},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := statusBadge(tt.status); got != tt.want {
				t.Errorf("statusBadge(%q) = %q, want %q", tt.status, got, tt.want)
			}
		})
	}
}

func TestProposedChanges(t *testing.T) {
	t.Run("all fields null yields empty list", func(t *testing.T) {
		changes := proposedChanges(models.StudentUpdateRequest{})
		if len(changes) != 0 {
			t.Errorf("proposedChanges() = %v, want empty", changes)
		}
	})

	t.Run("only non-null fields are listed", func(t *testing.T) {
		request := models.StudentUpdateRequest{
			RequestedEmail:          strPtr("ann.new@school.test"),
			RequestedYearAndSection: strPtr("BSCS 3-1"),
		}
		changes := proposedChanges(request)
		if len(changes) != 2 {
			t.Fatalf("proposedChanges() returned %d changes, want 2", len(changes))
		}
		if changes[0].Field != "email" || changes[0].Value != "ann.new@school.test" {
			t.Errorf("changes[0] = %+v, want the email change", changes[0])
		}
		if changes[1].Field != "yearandsection" || changes[1].Value != "BSCS 3-1" {
			t.Errorf("changes[1] = %+v, want the section change", changes[1])
		}
	})
}
