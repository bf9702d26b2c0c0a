package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/jakartamandarin/console/core"
	"github.com/jakartamandarin/console/core/auth"
	"github.com/jakartamandarin/console/core/dashboard"
	"github.com/jakartamandarin/console/core/session"
	"github.com/jakartamandarin/console/core/settings"
	"github.com/jakartamandarin/console/core/student"
	"github.com/jakartamandarin/console/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	log      core.Logger
	notify   core.Notifier
	sessions *session.Service
	static   *auth.StaticProvider
	auth     *auth.Authenticator
	reset    *auth.ResetService
	users    *user.Service
	student  *student.Service
	dash     *dashboard.Service
	sea      *dashboard.SEAService
	ssc      *dashboard.SSCService
	settings *settings.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  accounts                            - list demo accounts for quick-fill")
	fmt.Println("  login -email EMAIL [-account ID]    - sign in (password prompted)")
	fmt.Println("  logout                              - clear the stored session")
	fmt.Println("  whoami                              - show the signed-in user")
	fmt.Println("  forgot-password -email EMAIL        - request a password reset")
	fmt.Println("  reset-password -email EMAIL -token T - set a new password (prompted twice)")
	fmt.Println("  dashboard | sea | ssc               - role dashboards")
	fmt.Println("  classes | attendance                - student self-service pages")
	fmt.Println("  users list|add|update|del           - user management")
	fmt.Println("  settings show|save|test-email|backup - settings panel")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	ctx := context.Background()

	switch args[1] {
	case "accounts":
		return cli.accounts()
	case "login":
		return cli.login(ctx, args[2:])
	case "logout":
		return cli.logout()
	case "whoami":
		return cli.whoami()
	case "forgot-password":
		return cli.forgotPassword(ctx, args[2:])
	case "reset-password":
		return cli.resetPassword(ctx, args[2:])
	case "dashboard":
		return cli.dashboard(ctx)
	case "sea":
		return cli.seaDashboard(ctx)
	case "ssc":
		return cli.sscDashboard(ctx)
	case "classes":
		return cli.classes(ctx)
	case "attendance":
		return cli.attendance(ctx)
	case "users":
		return cli.userCmd(ctx, args[2:])
	case "settings":
		return cli.settingsCmd(ctx, args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) accounts() error {
	for _, e := range cli.static.VisibleEntries() {
		fmt.Printf("%2d  %-18s %-32s %-8s %s\n", e.ID, e.Name, e.Email, e.Role, e.Description)
	}
	return nil
}

func (cli *commandLine) login(ctx context.Context, args []string) error {
	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	email := loginCmd.String("email", "", "The account's email address.")
	account := loginCmd.Int("account", 0, "Quick-fill from a demo account ID instead of typing.")
	if err := loginCmd.Parse(args); err != nil {
		return err
	}

	var creds auth.Credentials
	if *account > 0 {
		// quick-fill copies the entry's credentials; submission below
		// still goes through the normal provider chain
		var found bool
		for _, e := range cli.static.VisibleEntries() {
			if e.ID == *account {
				e.Fill(&creds)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown demo account: %d", *account)
		}
	} else {
		if *email == "" {
			loginCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		creds = auth.Credentials{Email: *email, Password: string(pwd)}
	}

	sess, err := cli.auth.Login(ctx, creds)
	if err != nil {
		cli.notify.Error(err.Error())
		return err
	}
	cli.notify.Success(fmt.Sprintf("welcome back, %s (%s)", sess.User.Name, sess.User.Role))
	return nil
}

func (cli *commandLine) logout() error {
	if err := cli.sessions.Logout(); err != nil {
		return err
	}
	cli.notify.Success("signed out")
	return nil
}

func (cli *commandLine) whoami() error {
	sess, err := cli.sessions.Current()
	if err != nil {
		fmt.Println("not signed in")
		return nil
	}
	fmt.Printf("%s <%s> role=%s\n", sess.User.Name, sess.User.Email, sess.User.Role)
	return nil
}

func (cli *commandLine) forgotPassword(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("forgot-password", flag.ExitOnError)
	email := cmd.String("email", "", "The account's email address.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		cmd.Usage()
		return errHelp
	}
	_, err := cli.reset.Request(ctx, *email)
	return err
}

func (cli *commandLine) resetPassword(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("reset-password", flag.ExitOnError)
	email := cmd.String("email", "", "The account's email address.")
	token := cmd.String("token", "", "The reset token from the email.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *email == "" || *token == "" {
		cmd.Usage()
		return errHelp
	}

	fmt.Print("Enter new password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return err
	}
	fmt.Print("Confirm new password:")
	confirm, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return err
	}

	np := auth.NewPassword{Email: *email, Password: string(pwd), PasswordConfirm: string(confirm)}
	if err := cli.reset.Confirm(ctx, *token, np); err != nil {
		return cli.formError(err)
	}
	return nil
}

func (cli *commandLine) dashboard(ctx context.Context) error {
	vs := cli.dash.Load(ctx)
	fmt.Printf("Total users:      %d\n", vs.TotalUsers)
	fmt.Printf("Active classes:   %d\n", vs.ActiveClasses)
	fmt.Printf("Pending invoices: %d\n", vs.PendingInvoices)
	for _, inv := range vs.RecentInvoices {
		fmt.Printf("  %-8s %-24s %10.2f due %s\n", inv.ID, inv.StudentName, inv.Amount, inv.DueDate)
	}
	return nil
}

func (cli *commandLine) seaDashboard(ctx context.Context) error {
	vs := cli.sea.Load(ctx)
	fmt.Printf("Active students: %d\n", vs.ActiveStudents)
	for _, lead := range vs.Pipeline {
		fmt.Printf("  %-6s %-20s %-20s %-16s follow-up %s\n", lead.ID, lead.Name, lead.Program, lead.Stage, lead.FollowUp)
	}
	return nil
}

func (cli *commandLine) sscDashboard(ctx context.Context) error {
	vs := cli.ssc.Load(ctx)
	fmt.Printf("Active students: %d\n", vs.Stats.ActiveStudents)
	fmt.Printf("At risk:         %d\n", vs.Stats.AtRiskStudents)
	fmt.Printf("Open follow-ups: %d\n", vs.Stats.OpenFollowUps)
	fmt.Printf("Retention rate:  %.1f%%\n", vs.Stats.RetentionRate)
	for _, f := range vs.FollowUps {
		fmt.Printf("  %-6s %-20s %-20s %-24s due %s\n", f.ID, f.Student, f.Class, f.Reason, f.DueDate)
	}
	return nil
}

func (cli *commandLine) classes(ctx context.Context) error {
	vs := cli.student.LoadClasses(ctx)
	fmt.Printf("Classes: %d total, %d active, %d sessions done, %d upcoming\n",
		vs.Stats.TotalClasses, vs.Stats.ActiveClasses, vs.Stats.CompletedSessions, vs.Stats.UpcomingSessions)
	for _, cls := range vs.Classes {
		fmt.Printf("  %-6s %-24s %-10s %-18s %3d%% %s\n", cls.ID, cls.Name, cls.Level, cls.Teacher, cls.Progress, cls.Status)
	}
	return nil
}

func (cli *commandLine) attendance(ctx context.Context) error {
	vs := cli.student.LoadAttendance(ctx)
	fmt.Printf("Attendance: %d sessions, %d present, %d absent, %d late (%.1f%%)\n",
		vs.Stats.TotalSessions, vs.Stats.Present, vs.Stats.Absent, vs.Stats.Late, vs.Stats.AttendanceRate)
	for _, rec := range vs.Records {
		fmt.Printf("  %-10s %-24s %-8s %s\n", rec.Date, rec.ClassName, rec.Status, rec.Notes)
	}
	return nil
}

func (cli *commandLine) userCmd(ctx context.Context, args []string) error {
	if len(args) < 1 {
		cli.printUsage()
		return errHelp
	}

	switch args[0] {
	case "list":
		cli.printUsers(cli.users.Load(ctx).Users)
		return nil
	case "add":
		return cli.userAdd(ctx, args[1:])
	case "update":
		return cli.userUpdate(ctx, args[1:])
	case "del":
		return cli.userDelete(ctx, args[1:])
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) printUsers(users []user.Record) {
	for _, u := range users {
		active := "inactive"
		if u.IsActive {
			active = "active"
		}
		fmt.Printf("%-6s %-20s %-32s %-8s %s\n", u.ID, u.Name, u.Email, u.Role, active)
	}
}

func (cli *commandLine) userAdd(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("users add", flag.ExitOnError)
	name := cmd.String("name", "", "Full name.")
	email := cmd.String("email", "", "Email address.")
	role := cmd.String("role", "", "One of: "+strings.Join(user.AllRoles, ", "))
	phone := cmd.String("phone", "", "Phone number (optional).")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	fmt.Print("Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return err
	}

	users, err := cli.users.Create(ctx, user.NewUser{
		Name:     *name,
		Email:    *email,
		Role:     *role,
		Phone:    *phone,
		Password: string(pwd),
	})
	if err != nil {
		return cli.formError(err)
	}
	cli.printUsers(users)
	return nil
}

func (cli *commandLine) userUpdate(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("users update", flag.ExitOnError)
	id := cmd.String("id", "", "The user's ID.")
	name := cmd.String("name", "", "Full name.")
	email := cmd.String("email", "", "Email address.")
	role := cmd.String("role", "", "One of: "+strings.Join(user.AllRoles, ", "))
	phone := cmd.String("phone", "", "Phone number (optional).")
	password := cmd.String("password", "", "New password; empty leaves it unchanged.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		cmd.Usage()
		return errHelp
	}

	users, err := cli.users.Update(ctx, *id, user.UpdateUser{
		Name:     *name,
		Email:    *email,
		Role:     *role,
		Phone:    *phone,
		Password: *password,
	})
	if err != nil {
		return cli.formError(err)
	}
	cli.printUsers(users)
	return nil
}

func (cli *commandLine) userDelete(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("users del", flag.ExitOnError)
	id := cmd.String("id", "", "The user's ID.")
	yes := cmd.Bool("yes", false, "Confirm the deletion; it cannot be undone.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		cmd.Usage()
		return errHelp
	}

	users, err := cli.users.Delete(ctx, *id, *yes)
	if errors.Is(err, user.ErrNotConfirmed) {
		fmt.Println("pass -yes to confirm; deletion cannot be undone")
		return err
	}
	cli.printUsers(users)
	return err
}

func (cli *commandLine) settingsCmd(ctx context.Context, args []string) error {
	if len(args) < 1 {
		cli.printUsage()
		return errHelp
	}

	switch args[0] {
	case "show":
		vs := cli.settings.Load(ctx)
		for _, cat := range settings.AllCategories {
			if len(vs.Values[cat]) == 0 {
				continue
			}
			fmt.Println(cat + ":")
			for k, v := range vs.Values[cat] {
				fmt.Printf("  %-24s %s\n", k, v)
			}
		}
		return nil
	case "save":
		return cli.settingsSave(ctx, args[1:])
	case "test-email":
		return cli.settings.TestEmail(ctx)
	case "backup":
		return cli.settings.Backup(ctx)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) settingsSave(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("settings save", flag.ExitOnError)
	category := cmd.String("category", settings.CategoryGeneral, "Settings category to save under.")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	values := make(map[string]string)
	for _, kv := range cmd.Args() {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("expected key=value, got %q", kv)
		}
		values[parts[0]] = parts[1]
	}
	if len(values) == 0 {
		cmd.Usage()
		return errHelp
	}

	_, err := cli.settings.Save(ctx, *category, values)
	return err
}

// formError prints field-level validation errors the way the web
// forms highlight them, and passes everything else through.
func (cli *commandLine) formError(err error) error {
	var verr *core.ValidationError
	if errors.As(err, &verr) {
		for _, fld := range verr.Fields {
			fmt.Printf("  %s: %s\n", fld.Field, fld.Error)
		}
	}
	return err
}
