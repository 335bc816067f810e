package controllers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/bnbcollege/feeportal/config"
	"github.com/bnbcollege/feeportal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileViewRequiresLogin(t *testing.T) {
	server, client := setupTestServer(t)

	resp, err := client.Get(server.URL + "/profile")
	require.NoError(t, err)
	readBody(t, resp)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestProfileEditMutatesOnlyEditableFields(t *testing.T) {
	server, client := setupTestServer(t)

	resp := registerStudent(t, client, server.URL, "Alice", "alice@example.com", "pw1secret", "R100", "BTech", "Engineering")
	readBody(t, resp)
	resp = loginStudent(t, client, server.URL, "alice@example.com", "pw1secret")
	readBody(t, resp)

	var before models.Student
	require.NoError(t, config.DB.Where("email = ?", "alice@example.com").First(&before).Error)

	primeCaptcha(t, client, server.URL, "ZZ11A")
	resp = postForm(t, client, server.URL+"/profile/edit", url.Values{
		"name":       {"Alice Renamed"},
		"course":     {"BCom"},
		"department": {"Commerce"},
		"captcha":    {"ZZ11A"},
	})
	readBody(t, resp)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/profile", resp.Header.Get("Location"))

	var after models.Student
	require.NoError(t, config.DB.Where("id = ?", before.ID).First(&after).Error)
	assert.Equal(t, "Alice Renamed", after.Name)
	assert.Equal(t, "BCom", after.Course)
	assert.Equal(t, "Commerce", after.Department)
	// Email, roll number and password are untouched by this form
	assert.Equal(t, before.Email, after.Email)
	assert.Equal(t, before.RollNo, after.RollNo)
	assert.Equal(t, before.Password, after.Password)
}

func TestProfileEditRejectsBadCaptcha(t *testing.T) {
	server, client := setupTestServer(t)

	resp := registerStudent(t, client, server.URL, "Bob", "bob@example.com", "pw2secret", "R200", "BA", "Arts")
	readBody(t, resp)
	resp = loginStudent(t, client, server.URL, "bob@example.com", "pw2secret")
	readBody(t, resp)

	primeCaptcha(t, client, server.URL, "ZZ11A")
	resp = postForm(t, client, server.URL+"/profile/edit", url.Values{
		"name":       {"Bob Renamed"},
		"course":     {"BCom"},
		"department": {"Commerce"},
		"captcha":    {"WRONG"},
	})
	readBody(t, resp)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/profile/edit", resp.Header.Get("Location"))

	var after models.Student
	require.NoError(t, config.DB.Where("email = ?", "bob@example.com").First(&after).Error)
	assert.Equal(t, "Bob", after.Name)
}

func TestCaptchaEndpointServesPNG(t *testing.T) {
	server, client := setupTestServer(t)

	resp, err := client.Get(server.URL + "/captcha")
	require.NoError(t, err)
	body := readBody(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	// PNG magic bytes
	require.True(t, len(body) > 8)
	assert.Equal(t, "\x89PNG\r\n\x1a\n", body[:8])
}
