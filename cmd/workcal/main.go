package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/workcal/internal/calendar"
	"github.com/username/workcal/internal/config"
	"github.com/username/workcal/pkg/dateutil"
)

var (
	configPath  string
	granularity time.Duration
	excludeEnds bool
	logger      *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "workcal",
		Short: "Working calendar arithmetic",
		Long:  "Advance instants by working days, hours or minutes over a configurable work week with holiday rules",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Config file path")

	rootCmd.AddCommand(addDaysCmd())
	rootCmd.AddCommand(addHoursCmd())
	rootCmd.AddCommand(addMinutesCmd())
	rootCmd.AddCommand(addDurationCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(betweenCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadCalendar() (*calendar.Calendar, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	week, err := cfg.WorkWeek()
	if err != nil {
		return nil, err
	}

	rules, err := cfg.HolidayRules()
	if err != nil {
		return nil, err
	}

	return calendar.New(week, rules, logger)
}

func addDaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-days <instant> <n>",
		Short: "Advance an instant by n working days",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(args, func(cal *calendar.Calendar, start time.Time, n int) (time.Time, error) {
				return cal.AddWorkingDays(start, n)
			})
		},
	}
}

func addHoursCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-hours <instant> <n>",
		Short: "Advance an instant by n working hours",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(args, func(cal *calendar.Calendar, start time.Time, n int) (time.Time, error) {
				return cal.AddWorkingHours(start, n)
			})
		},
	}
}

func addMinutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-minutes <instant> <n>",
		Short: "Advance an instant by n working minutes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(args, func(cal *calendar.Calendar, start time.Time, n int) (time.Time, error) {
				return cal.AddWorkingMinutes(start, n)
			})
		},
	}
}

func addDurationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <instant> <duration>",
		Short: "Advance an instant by a working duration (e.g. 90m, 3h30m)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := loadCalendar()
			if err != nil {
				return err
			}

			start, err := parseInstant(args[0])
			if err != nil {
				return err
			}

			d, err := time.ParseDuration(args[1])
			if err != nil {
				return fmt.Errorf("invalid duration %q: %w", args[1], err)
			}

			result, err := cal.AddWorkingDuration(start, d)
			if err != nil {
				return err
			}

			logger.Info("Added working duration",
				zap.Time("start", start),
				zap.Duration("duration", d),
				zap.Time("result", result))

			fmt.Println(result.Format("2006-01-02 15:04:05"))
			return nil
		},
	}
}

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <instant>",
		Short: "Classify an instant and show the nearest working moments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := loadCalendar()
			if err != nil {
				return err
			}

			instant, err := parseInstant(args[0])
			if err != nil {
				return err
			}

			working, next, previous := cal.IsWorkingMoment(instant, granularity)

			status := "not working"
			if working {
				status = "working"
			}
			fmt.Printf("%s: %s\n", instant.Format("2006-01-02 15:04:05"), status)
			fmt.Printf("previous: %s\n", previous.Format("2006-01-02 15:04:05"))
			fmt.Printf("next:     %s\n", next.Format("2006-01-02 15:04:05"))
			return nil
		},
	}

	cmd.Flags().DurationVarP(&granularity, "granularity", "g", time.Minute, "Search step for nearest working moments")
	return cmd
}

func betweenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "between <start> <end>",
		Short: "List working days between two instants, newest first",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := loadCalendar()
			if err != nil {
				return err
			}

			start, err := parseInstant(args[0])
			if err != nil {
				return err
			}
			end, err := parseInstant(args[1])
			if err != nil {
				return err
			}

			days, err := cal.WorkingDaysBetween(start, end, !excludeEnds)
			if err != nil {
				return err
			}

			for _, day := range days {
				fmt.Println(day.Format("2006-01-02"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&excludeEnds, "exclude-ends", false, "Leave the endpoint dates out of the result")
	return cmd
}

func runAdd(args []string, op func(*calendar.Calendar, time.Time, int) (time.Time, error)) error {
	cal, err := loadCalendar()
	if err != nil {
		return err
	}

	start, err := parseInstant(args[0])
	if err != nil {
		return err
	}

	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[1], err)
	}

	result, err := op(cal, start, n)
	if err != nil {
		return err
	}

	fmt.Println(result.Format("2006-01-02 15:04:05"))
	return nil
}

func parseInstant(arg string) (time.Time, error) {
	switch arg {
	case "now":
		return time.Now(), nil
	case "today":
		return dateutil.Today(), nil
	}
	return dateutil.ParseDate(arg)
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
