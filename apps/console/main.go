package main

import (
	"log"
	"os"

	"github.com/jakartamandarin/console/core"
	"github.com/jakartamandarin/console/core/auth"
	"github.com/jakartamandarin/console/core/dashboard"
	"github.com/jakartamandarin/console/core/session"
	"github.com/jakartamandarin/console/core/settings"
	"github.com/jakartamandarin/console/core/student"
	"github.com/jakartamandarin/console/core/user"
	"github.com/jakartamandarin/console/services/jmapi"
	logsvc "github.com/jakartamandarin/console/services/logger"
	notifysvc "github.com/jakartamandarin/console/services/notify"
	"github.com/jakartamandarin/console/storage/sessionfile"
)

func main() {
	std := log.New(os.Stdout, "JM : ", log.LstdFlags|log.Lmicroseconds)

	var logger core.Logger
	if core.Conf.Debug {
		logger = logsvc.NewStdLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, core.Conf)
	}

	store, err := sessionfile.NewStore(core.Conf.StorageDir)
	if err != nil {
		logger.Fatal("opening session store", err)
	}
	sessions := session.NewService(store, logger)

	client := jmapi.NewClient(&jmapi.Options{
		BaseURL:   core.Conf.API.BaseURL,
		Timeout:   core.Conf.API.Timeout,
		Logger:    logger,
		TokenFunc: sessions.Token,
	})

	notifier := notifysvc.NewConsoleNotifier()
	static := auth.NewStaticProvider()

	cli := &commandLine{
		log:      logger,
		notify:   notifier,
		sessions: sessions,
		static:   static,
		auth:     auth.NewAuthenticator(sessions, logger, jmapi.NewRemoteProvider(client), static),
		reset:    auth.NewResetService(client, logger, notifier),
		users:    user.NewService(client, logger, notifier),
		student:  student.NewService(client, logger),
		dash:     dashboard.NewService(client, logger),
		sea:      dashboard.NewSEAService(client, logger, core.Conf.ShowSampleRows),
		ssc:      dashboard.NewSSCService(client, logger, core.Conf.ShowSampleRows),
		settings: settings.NewService(client, logger, notifier),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("command failed", err)
		}
		os.Exit(1)
	}
}
