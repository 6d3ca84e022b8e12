package handlers

import (
	"testing"

	"github.com/Chell2003/payment-nexus-dashboard/models"
	"github.com/google/uuid"
)

func TestDiffField(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		current   *string
		want      *string
	}{
		{name: "empty submission means unchanged", submitted: "", current: strPtr("Ann")},
		{name: "whitespace-only means unchanged", submitted: "   ", current: strPtr("Ann")},
		{name: "identical value means unchanged", submitted: "Ann", current: strPtr("Ann")},
		{name: "different value is recorded", submitted: "Anna", current: strPtr("Ann"), want: strPtr("Anna")},
		{name: "value against nil current is recorded", submitted: "Ann", current: nil, want: strPtr("Ann")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := diffField(tt.submitted, tt.current)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("diffField() = %q, want nil", *got)
			case tt.want != nil && got == nil:
				t.Errorf("diffField() = nil, want %q", *tt.want)
			case tt.want != nil && got != nil && *got != *tt.want:
				t.Errorf("diffField() = %q, want %q", *got, *tt.want)
			}
		})
	}
}

func TestDiffRequestedFields(t *testing.T) {
	student := models.Student{
		ID:             uuid.New(),
		StudentNumber:  strPtr("001"),
		Name:           strPtr("Ann"),
		Email:          strPtr("ann@school.test"),
		Phone:          strPtr("0917 000 0000"),
		YearAndSection: strPtr("BSCS 2-3"),
	}

	t.Run("references the resolved student id", func(t *testing.T) {
		request := diffRequestedFields(student, SubmitUpdateRequestBody{StudentNumber: "001"})
		if request.StudentID != student.ID {
			t.Errorf("StudentID = %v, want %v", request.StudentID, student.ID)
		}
		if request.Status != models.RequestStatusPending {
			t.Errorf("Status = %q, want %q", request.Status, models.RequestStatusPending)
		}
	})

	t.Run("identical values persist as null", func(t *testing.T) {
		request := diffRequestedFields(student, SubmitUpdateRequestBody{
			StudentNumber:  "001",
			Name:           "Ann",
			Email:          "ann@school.test",
			Phone:          "0917 000 0000",
			YearAndSection: "BSCS 2-3",
		})
		if request.HasChanges() {
			t.Errorf("request with all-identical values should have no changes, got %+v", request)
		}
	})

	t.Run("changed values persist as submitted", func(t *testing.T) {
		request := diffRequestedFields(student, SubmitUpdateRequestBody{
			StudentNumber:  "001",
			Name:           "Ann",
			Email:          "ann.new@school.test",
			YearAndSection: "BSCS 3-1",
		})
		if request.RequestedName != nil {
			t.Errorf("RequestedName = %q, want nil", *request.RequestedName)
		}
		if request.RequestedEmail == nil || *request.RequestedEmail != "ann.new@school.test" {
			t.Errorf("RequestedEmail = %v, want ann.new@school.test", request.RequestedEmail)
		}
		if request.RequestedPhone != nil {
			t.Errorf("RequestedPhone = %q, want nil", *request.RequestedPhone)
		}
		if request.RequestedYearAndSection == nil || *request.RequestedYearAndSection != "BSCS 3-1" {
			t.Errorf("RequestedYearAndSection = %v, want BSCS 3-1", request.RequestedYearAndSection)
		}
		if !request.HasChanges() {
			t.Error("request with a changed field should report changes")
		}
	})
}
