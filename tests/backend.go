// Package testutil hosts a fake Jakarta Mandarin backend for tests:
// the real one is an external collaborator, so every controller test
// runs against this stand-in instead.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jakartamandarin/console/core/dashboard"
	"github.com/jakartamandarin/console/core/session"
	"github.com/jakartamandarin/console/core/settings"
	"github.com/jakartamandarin/console/core/student"
	"github.com/jakartamandarin/console/core/user"
	"github.com/jakartamandarin/console/services/jmapi"
)

// Backend is an in-memory stand-in for the REST backend. Routes are
// keyed as "METHOD /route/pattern" for hit counting and forced
// failures.
type Backend struct {
	t   *testing.T
	srv *httptest.Server

	mu       sync.Mutex
	hits     map[string]int
	fail     map[string]string // route key -> error message served as 500
	userSeq  int
	accounts map[string]loginAccount // email -> account accepted by /auth/login

	Users           []user.Record
	Classes         []student.ClassRecord
	MyClassRecords  []student.ClassRecord
	Attendance      []student.AttendanceRecord
	Invoices        []dashboard.Invoice
	ClassesStats    student.ClassesStats
	AttendanceStats student.AttendanceStats
	SSCStats        dashboard.SSCStats
	Settings        []settings.Setting
}

type loginAccount struct {
	password string
	user     session.User
}

func NewBackend(t *testing.T) *Backend {
	b := &Backend{
		t:        t,
		hits:     make(map[string]int),
		fail:     make(map[string]string),
		accounts: make(map[string]loginAccount),
	}

	e := echo.New()
	e.Use(b.middleware)

	e.POST("/auth/login", b.login)
	e.POST("/auth/forgot-password", b.forgotPassword)
	e.POST("/auth/reset-password", b.resetPassword)

	e.GET("/user", b.listUsers)
	e.POST("/user", b.createUser)
	e.PATCH("/user/:id", b.updateUser)
	e.DELETE("/user/:id", b.deleteUser)

	e.GET("/kelas", b.listClasses)
	e.GET("/kelas/my-classes", b.myClasses)
	e.GET("/invoice", b.listInvoices)
	e.GET("/student/classes-stats", b.classesStats)
	e.GET("/student/attendance-stats", b.attendanceStats)
	e.GET("/absensi/my-attendance", b.myAttendance)
	e.GET("/ssc/stats", b.sscStats)

	e.GET("/settings", b.listSettings)
	e.POST("/settings/bulk", b.bulkSettings)
	e.POST("/settings/test-email", b.ack)
	e.POST("/settings/backup", b.ack)

	b.srv = httptest.NewServer(e)
	t.Cleanup(b.srv.Close)
	return b
}

func (b *Backend) URL() string { return b.srv.URL }

// Close stops the server early so calls fail at the transport level.
func (b *Backend) Close() { b.srv.Close() }

// NewClient returns a gateway client pointed at this backend.
func (b *Backend) NewClient(tokenFn func() string) *jmapi.Client {
	return jmapi.NewClient(&jmapi.Options{
		BaseURL:   b.srv.URL,
		Timeout:   5 * time.Second,
		Logger:    NewLogger(b.t),
		TokenFunc: tokenFn,
	})
}

// FailRoute makes a route answer 500 with the given message ("" for a
// bare status). Key format: "GET /kelas", "DELETE /user/:id".
func (b *Backend) FailRoute(key, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fail[key] = message
}

// Hits reports how often a route was reached.
func (b *Backend) Hits(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[key]
}

// AddAccount registers credentials the fake /auth/login accepts.
func (b *Backend) AddAccount(email, password string, usr session.User) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.accounts[email] = loginAccount{password: password, user: usr}
}

func (b *Backend) middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := c.Request().Method + " " + c.Path()
		b.mu.Lock()
		b.hits[key]++
		msg, forced := b.fail[key]
		b.mu.Unlock()
		if forced {
			if msg == "" {
				return c.NoContent(http.StatusInternalServerError)
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": msg})
		}
		return next(c)
	}
}

// Handlers

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (b *Backend) login(c echo.Context) error {
	data := new(credentials)
	if err := c.Bind(data); err != nil {
		return err
	}

	b.mu.Lock()
	acct, ok := b.accounts[data.Email]
	b.mu.Unlock()
	if !ok || acct.password != data.Password {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": "backend-token-" + data.Email,
		"user":         acct.user,
	})
}

func (b *Backend) forgotPassword(c echo.Context) error {
	data := new(credentials)
	if err := c.Bind(data); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":    "reset link sent to " + data.Email,
		"resetToken": "reset-" + data.Email,
	})
}

func (b *Backend) resetPassword(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "password updated"})
}

func (b *Backend) listUsers(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if c.QueryParam("isActive") == "true" {
		active := make([]user.Record, 0, len(b.Users))
		for _, u := range b.Users {
			if u.IsActive {
				active = append(active, u)
			}
		}
		return c.JSON(http.StatusOK, active)
	}
	return c.JSON(http.StatusOK, b.Users)
}

func (b *Backend) createUser(c echo.Context) error {
	data := new(user.NewUser)
	if err := c.Bind(data); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.userSeq++
	rec := user.Record{
		ID:        strconv.Itoa(b.userSeq),
		Name:      data.Name,
		Email:     data.Email,
		Role:      data.Role,
		Phone:     data.Phone,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	b.Users = append(b.Users, rec)
	return c.JSON(http.StatusCreated, rec)
}

func (b *Backend) updateUser(c echo.Context) error {
	data := new(user.UpdateUser)
	if err := c.Bind(data); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i, u := range b.Users {
		if u.ID == c.Param("id") {
			u.Name = data.Name
			u.Email = data.Email
			u.Role = data.Role
			u.Phone = data.Phone
			if data.IsActive != nil {
				u.IsActive = *data.IsActive
			}
			b.Users[i] = u
			return c.JSON(http.StatusOK, u)
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"message": fmt.Sprintf("user %s not found", c.Param("id"))})
}

func (b *Backend) deleteUser(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, u := range b.Users {
		if u.ID == c.Param("id") {
			b.Users = append(b.Users[:i], b.Users[i+1:]...)
			return c.NoContent(http.StatusOK)
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"message": fmt.Sprintf("user %s not found", c.Param("id"))})
}

func (b *Backend) listClasses(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return c.JSON(http.StatusOK, b.Classes)
}

func (b *Backend) myClasses(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return c.JSON(http.StatusOK, b.MyClassRecords)
}

func (b *Backend) listInvoices(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return c.JSON(http.StatusOK, b.Invoices)
}

func (b *Backend) classesStats(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return c.JSON(http.StatusOK, b.ClassesStats)
}

func (b *Backend) attendanceStats(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return c.JSON(http.StatusOK, b.AttendanceStats)
}

func (b *Backend) myAttendance(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return c.JSON(http.StatusOK, b.Attendance)
}

func (b *Backend) sscStats(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return c.JSON(http.StatusOK, b.SSCStats)
}

func (b *Backend) listSettings(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return c.JSON(http.StatusOK, b.Settings)
}

func (b *Backend) bulkSettings(c echo.Context) error {
	var batch []settings.Setting
	if err := c.Bind(&batch); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range batch {
		replaced := false
		for i, existing := range b.Settings {
			if existing.Key == s.Key {
				b.Settings[i] = s
				replaced = true
				break
			}
		}
		if !replaced {
			b.Settings = append(b.Settings, s)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "ok"})
}

func (b *Backend) ack(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "ok"})
}
