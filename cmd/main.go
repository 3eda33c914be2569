package main

import (
	"fmt"
	"os"
	"strings"

	"cotmonitor/cmd/cotctl"
	"cotmonitor/src/quant"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var Version string

func main() {
	_ = godotenv.Load()

	app := cli.NewApp()
	app.Name = "cotctl"
	app.Usage = "The COT monitor command line interface"

	app.Commands = []cli.Command{
		latestCMD,
		historyCMD,
		indicatorsCMD,
	}

	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	latestCMD = cli.Command{
		Name:        "latest",
		Usage:       "print the latest positioning snapshot for a symbol",
		Action:      latestAction,
		ArgsUsage:   "SYMBOL",
		Flags:       []cli.Flag{},
		Description: `Fetch the most recent legacy report snapshot and print it as JSON`,
	}
	historyCMD = cli.Command{
		Name:      "history",
		Usage:     "print the weekly net positioning series for a symbol",
		Action:    historyAction,
		ArgsUsage: "SYMBOL",
		Flags: []cli.Flag{
			reportFlag,
		},
		Description: `Fetch the full weekly history and print it as JSON`,
	}
	indicatorsCMD = cli.Command{
		Name:      "indicators",
		Usage:     "print derived positioning indicators for a symbol",
		Action:    indicatorsAction,
		ArgsUsage: "SYMBOL",
		Flags: []cli.Flag{
			reportFlag,
			cli.StringFlag{Name: "role", Usage: "trader category label, defaults to the report's first role"},
			cli.IntFlag{Name: "window", Value: quant.DefaultZScoreWindow, Usage: "z-score lookback in weeks"},
			cli.IntFlag{Name: "smoothing", Value: quant.DefaultSmoothingWindow, Usage: "velocity smoothing window in weeks"},
			cli.IntFlag{Name: "lookback", Value: quant.DefaultLookbackMonths, Usage: "percentile lookback in months"},
		},
		Description: `Compute z-score, velocity and percentile indicators and print them as JSON`,
	}

	reportFlag = cli.StringFlag{Name: "report", Value: "legacy", Usage: "report type: legacy, disaggregated or tff"}
)

func symbolArg(c *cli.Context) (string, error) {
	symbol := strings.ToUpper(c.Args().First())
	if symbol == "" {
		return "", fmt.Errorf("symbol argument required")
	}
	return symbol, nil
}

func latestAction(c *cli.Context) error {
	symbol, err := symbolArg(c)
	if err != nil {
		return err
	}

	logrus.Info("Starting latest CMD")
	ctl := &cotctl.Cotctl{Log: logrus.WithField("cmd", "latest")}
	if err := ctl.Latest(symbol); err != nil {
		logrus.WithError(err).Error("Starting cmd")
		return err
	}

	return nil
}

func historyAction(c *cli.Context) error {
	symbol, err := symbolArg(c)
	if err != nil {
		return err
	}

	logrus.Info("Starting history CMD")
	ctl := &cotctl.Cotctl{Log: logrus.WithField("cmd", "history")}
	if err := ctl.History(symbol, c.String("report")); err != nil {
		logrus.WithError(err).Error("Starting cmd")
		return err
	}

	return nil
}

func indicatorsAction(c *cli.Context) error {
	symbol, err := symbolArg(c)
	if err != nil {
		return err
	}

	logrus.Info("Starting indicators CMD")
	ctl := &cotctl.Cotctl{Log: logrus.WithField("cmd", "indicators")}
	err = ctl.Indicators(symbol, c.String("report"), c.String("role"),
		c.Int("window"), c.Int("smoothing"), c.Int("lookback"))
	if err != nil {
		logrus.WithError(err).Error("Starting cmd")
		return err
	}

	return nil
}
