package services

import (
	"encoding/json"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type applicationFixture struct {
	svc      ApplicationService
	apps     *fakeApplicationStore
	postings *fakePostingStores
}

func newApplicationFixture() *applicationFixture {
	apps := newFakeApplicationStore()
	postings := newFakePostingStores()
	return &applicationFixture{
		svc:      NewApplicationService(apps, postings),
		apps:     apps,
		postings: postings,
	}
}

func (f *applicationFixture) addPosting(t *testing.T, postingType models.PostingType, visible bool) *models.Posting {
	t.Helper()
	p := &models.Posting{
		Type:       postingType,
		Title:      "Listing",
		Company:    "Acme",
		Status:     models.PostingStatusApproved,
		IsApproved: visible,
		IsActive:   true,
	}
	require.NoError(t, f.postings.Create(p))
	return p
}

func strptr(s string) *string { return &s }

func TestSubmitApplication(t *testing.T) {
	t.Run("against a visible job", func(t *testing.T) {
		f := newApplicationFixture()
		job := f.addPosting(t, models.PostingTypeJob, true)

		app, err := f.svc.Submit(&dto.SubmitApplicationRequest{
			JobID:          strptr(job.ID),
			ApplicantName:  "Alice",
			ApplicantEmail: "Alice@Example.com",
			Answers:        json.RawMessage(`{"availability":"immediate"}`),
		})
		require.NoError(t, err)

		assert.Equal(t, models.ApplicationStatusPending, app.Status)
		assert.Equal(t, "alice@example.com", app.ApplicantEmail)
		assert.NotEmpty(t, app.Answers)
	})

	t.Run("requires exactly one posting reference", func(t *testing.T) {
		f := newApplicationFixture()
		job := f.addPosting(t, models.PostingTypeJob, true)
		internship := f.addPosting(t, models.PostingTypeInternship, true)

		_, err := f.svc.Submit(&dto.SubmitApplicationRequest{
			ApplicantName:  "Alice",
			ApplicantEmail: "alice@example.com",
		})
		assertCode(t, err, apperrors.CodeValidationFailed)

		_, err = f.svc.Submit(&dto.SubmitApplicationRequest{
			JobID:          strptr(job.ID),
			InternshipID:   strptr(internship.ID),
			ApplicantName:  "Alice",
			ApplicantEmail: "alice@example.com",
		})
		assertCode(t, err, apperrors.CodeValidationFailed)
	})

	t.Run("pending postings cannot be applied to", func(t *testing.T) {
		f := newApplicationFixture()
		hidden := f.addPosting(t, models.PostingTypeJob, false)

		_, err := f.svc.Submit(&dto.SubmitApplicationRequest{
			JobID:          strptr(hidden.ID),
			ApplicantName:  "Alice",
			ApplicantEmail: "alice@example.com",
		})
		assertCode(t, err, apperrors.CodeNotFound)
	})

	t.Run("job reference must point at a job", func(t *testing.T) {
		f := newApplicationFixture()
		internship := f.addPosting(t, models.PostingTypeInternship, true)

		_, err := f.svc.Submit(&dto.SubmitApplicationRequest{
			JobID:          strptr(internship.ID),
			ApplicantName:  "Alice",
			ApplicantEmail: "alice@example.com",
		})
		assertCode(t, err, apperrors.CodeNotFound)
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	f := newApplicationFixture()
	job := f.addPosting(t, models.PostingTypeJob, true)
	app, err := f.svc.Submit(&dto.SubmitApplicationRequest{
		JobID:          strptr(job.ID),
		ApplicantName:  "Alice",
		ApplicantEmail: "alice@example.com",
	})
	require.NoError(t, err)

	updated, err := f.svc.UpdateStatus(adminActor, app.ID, &dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatusApproved,
		Notes:  "strong fit",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApproved, updated.Status)
	assert.Equal(t, "strong fit", updated.Notes)

	_, err = f.svc.UpdateStatus(residentActor, app.ID, &dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatusRejected,
	})
	assertCode(t, err, apperrors.CodeForbidden)
}

func TestListApplications(t *testing.T) {
	f := newApplicationFixture()
	job := f.addPosting(t, models.PostingTypeJob, true)
	internship := f.addPosting(t, models.PostingTypeInternship, true)

	_, err := f.svc.Submit(&dto.SubmitApplicationRequest{
		JobID: strptr(job.ID), ApplicantName: "Alice", ApplicantEmail: "alice@example.com",
	})
	require.NoError(t, err)
	_, err = f.svc.Submit(&dto.SubmitApplicationRequest{
		InternshipID: strptr(internship.ID), ApplicantName: "Bob", ApplicantEmail: "bob@example.com",
	})
	require.NoError(t, err)

	t.Run("per posting, admin only", func(t *testing.T) {
		apps, err := f.svc.ListForPosting(adminActor, models.PostingTypeJob, job.ID)
		require.NoError(t, err)
		assert.Len(t, apps, 1)

		apps, err = f.svc.ListForPosting(adminActor, models.PostingTypeInternship, internship.ID)
		require.NoError(t, err)
		assert.Len(t, apps, 1)

		_, err = f.svc.ListForPosting(residentActor, models.PostingTypeJob, job.ID)
		assertCode(t, err, apperrors.CodeForbidden)
	})

	t.Run("by email, owner or admin", func(t *testing.T) {
		apps, err := f.svc.ListByEmail(residentActor, "Alice@Example.com")
		require.NoError(t, err)
		assert.Len(t, apps, 1)

		apps, err = f.svc.ListByEmail(adminActor, "bob@example.com")
		require.NoError(t, err)
		assert.Len(t, apps, 1)

		_, err = f.svc.ListByEmail(otherActor, "alice@example.com")
		assertCode(t, err, apperrors.CodeForbidden)
	})
}
