package dto

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func bindCreateJob(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/jobs", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req CreateJobRequest
	return c.ShouldBindJSON(&req)
}

func TestCreateJobRequestAcceptsEmploymentTypes(t *testing.T) {
	for _, employmentType := range []string{"Full-time", "Part-time", "Contract", "Internship"} {
		body := `{"title":"Backend Engineer","company":"Acme","location":"Remote",` +
			`"description":"Build services","employmentType":"` + employmentType + `"}`
		if err := bindCreateJob(t, body); err != nil {
			t.Errorf("employmentType %q rejected: %v", employmentType, err)
		}
	}
}

func TestCreateJobRequestAllowsOmittedEmploymentType(t *testing.T) {
	body := `{"title":"Backend Engineer","company":"Acme","location":"Remote","description":"Build services"}`
	if err := bindCreateJob(t, body); err != nil {
		t.Errorf("omitted employmentType rejected: %v", err)
	}
}

func TestCreateJobRequestRejectsUnknownEmploymentType(t *testing.T) {
	body := `{"title":"Backend Engineer","company":"Acme","location":"Remote",` +
		`"description":"Build services","employmentType":"Freelance"}`
	if err := bindCreateJob(t, body); err == nil {
		t.Error("unknown employmentType should be rejected")
	}
}
