package watch

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-co-op/gocron/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/denysvitali/skoda-remote/cmd/root"
	"github.com/denysvitali/skoda-remote/skoda"
)

var (
	cronSchedule string
	runNow       bool
)

var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Periodically log range and position",
	Long: `Poll the vehicle on a cron schedule and log the remaining range.
If a home position is configured, the distance to it is logged as well.`,
	Example: `  # Log every 15 minutes
  skoda-remote watch --cron "*/15 * * * *"`,
	RunE: runWatch,
}

func init() {
	WatchCmd.Flags().StringVar(&cronSchedule, "cron", "*/15 * * * *", "Cron schedule")
	WatchCmd.Flags().BoolVar(&runNow, "now", true, "Poll once immediately on start")

	root.RootCmd.AddCommand(WatchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	client := root.GetClient()
	if client == nil {
		return fmt.Errorf("client not initialized")
	}

	vin, err := root.GetVIN()
	if err != nil {
		return err
	}

	w := &watcher{
		client: client,
		vin:    vin,
		log:    root.GetLogger(),
	}
	if root.HasHome() {
		home := root.GetConfig().Home
		w.home = &home
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	defer func() { _ = s.Shutdown() }()

	jobOptions := []gocron.JobOption{gocron.WithSingletonMode(gocron.LimitModeReschedule)}
	if runNow {
		jobOptions = append(jobOptions, gocron.WithStartAt(gocron.WithStartImmediately()))
	}

	_, err = s.NewJob(
		gocron.CronJob(cronSchedule, false),
		gocron.NewTask(func() {
			if err := w.poll(); err != nil {
				w.log.Errorf("Poll failed: %v", err)
			}
		}),
		jobOptions...,
	)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	fmt.Printf("Watching %s with cron: %s\n", vin, cronSchedule)
	s.Start()

	<-sigChan
	fmt.Println("\nShutting down scheduler...")
	return nil
}

type watcher struct {
	client *skoda.Client
	vin    string
	home   *skoda.HomeConfig
	log    *logrus.Logger
}

func (w *watcher) poll() error {
	fields := logrus.Fields{"vin": w.vin}

	status, err := w.client.GetStatus(w.vin)
	if err != nil {
		return err
	}
	if km, err := status.Kilometer(); err == nil {
		fields["range_km"] = km
	} else {
		w.log.Debugf("range not available: %v", err)
	}

	if w.home != nil {
		location, err := w.client.GetLocation(w.vin)
		if err != nil {
			return err
		}
		fields["home_distance_m"] = int(location.DistanceTo(w.home.Latitude, w.home.Longitude))
	}

	w.log.WithFields(fields).Info("vehicle status")
	return nil
}
