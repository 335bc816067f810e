package controllers_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/bnbcollege/feeportal/config"
	"github.com/bnbcollege/feeportal/controllers"
	"github.com/bnbcollege/feeportal/routes"
	"github.com/bnbcollege/feeportal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestServer wires the full router against a fresh in-memory database
// and returns a running test server plus a cookie-carrying client that does
// not follow redirects.
func setupTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, config.MigrateDB(db), "failed to migrate test database")

	config.DB = db
	require.NoError(t, controllers.CreateDefaultDepartment())

	router := routes.SetupRouter()

	// Test-only route to plant a known challenge answer in the session.
	router.GET("/testonly/captcha/:text", func(c *gin.Context) {
		if err := utils.SetCaptchaText(c, c.Param("text")); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return server, client
}

func primeCaptcha(t *testing.T, client *http.Client, base, text string) {
	t.Helper()
	resp, err := client.Get(base + "/testonly/captcha/" + text)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func postForm(t *testing.T, client *http.Client, rawURL string, form url.Values) *http.Response {
	t.Helper()
	resp, err := client.PostForm(rawURL, form)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

// registerStudent registers a student through the HTTP surface with a
// primed captcha
func registerStudent(t *testing.T, client *http.Client, base, name, email, password, rollNo, course, department string) *http.Response {
	t.Helper()
	primeCaptcha(t, client, base, "AB12C")
	return postForm(t, client, base+"/register", url.Values{
		"name":       {name},
		"email":      {email},
		"password":   {password},
		"roll_no":    {rollNo},
		"course":     {course},
		"department": {department},
		"captcha":    {"AB12C"},
	})
}

// loginStudent logs a student in through the HTTP surface with a primed
// captcha
func loginStudent(t *testing.T, client *http.Client, base, email, password string) *http.Response {
	t.Helper()
	primeCaptcha(t, client, base, "XY99Z")
	return postForm(t, client, base+"/login", url.Values{
		"email":    {email},
		"password": {password},
		"captcha":  {"XY99Z"},
	})
}

func loginDepartment(t *testing.T, client *http.Client, base, username, password string) *http.Response {
	t.Helper()
	return postForm(t, client, base+"/department/login", url.Values{
		"username": {username},
		"password": {password},
	})
}

func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}
