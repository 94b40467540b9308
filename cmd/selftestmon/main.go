// cmd/selftestmon/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/mfilippov/selftest-monitor/internal/config"
	"github.com/mfilippov/selftest-monitor/internal/export"
	exportmodbus "github.com/mfilippov/selftest-monitor/internal/export/modbus"
	"github.com/mfilippov/selftest-monitor/internal/poller"
	"github.com/mfilippov/selftest-monitor/internal/report"
	"github.com/mfilippov/selftest-monitor/internal/selftest"
	"github.com/mfilippov/selftest-monitor/internal/smartctl"
	"github.com/mfilippov/selftest-monitor/internal/status"
)

func main() {
	checkPath := flag.String("check", "", "parse a saved smartctl JSON report ('-' for stdin) and exit")
	strict := flag.Bool("strict", false, "with -check, validate the report against the schema first")
	flag.Parse()

	if *checkPath != "" {
		if err := runCheck(*checkPath, *strict); err != nil {
			log.Fatalf("check failed: %v", err)
		}
		return
	}

	if flag.NArg() < 1 {
		log.Fatal("usage: selftestmon <config.yaml> | selftestmon -check <report.json> [-strict]")
	}

	runMonitor(flag.Arg(0))
}

// runCheck is the one-shot path: extract and print the self-test state of a
// saved report without touching any device.
func runCheck(path string, strict bool) error {
	var b []byte
	var err error
	if path == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}

	doc, err := report.Parse(b)
	if err != nil {
		return err
	}

	// Accept both a full report and a bare ata_smart_data section.
	data, present := doc.Section(smartctl.SectionName)
	if !present {
		data = doc
	}
	if data == nil {
		return fmt.Errorf("%s section is not an object", smartctl.SectionName)
	}

	if strict {
		if err := report.ValidateSMARTData(data); err != nil {
			return err
		}
	}

	st, err := selftest.FromSMARTData(data)
	if err != nil {
		return err
	}

	fmt.Printf("status: value=%d %q\n", st.Status.Value, st.Status.String)
	fmt.Printf("running: %v\n", st.IsRunning())
	if st.Status.RemainingPercent != nil {
		fmt.Printf("remaining: %d%%\n", *st.Status.RemainingPercent)
	}
	if st.Status.Passed != nil {
		fmt.Printf("passed: %v\n", *st.Status.Passed)
	}

	types, err := st.TestTypes()
	if err != nil {
		return err
	}
	for _, tt := range types {
		fmt.Printf("polling: %s=%dmin\n", tt.Name, tt.Minutes)
	}

	return nil
}

func runMonitor(cfgPath string) {
	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	config.Normalize(cfg)

	mon := cfg.Monitor
	if len(mon.Devices) == 0 {
		log.Fatal("no devices left to monitor after ignore filtering")
	}

	client, err := smartctl.New(smartctl.Config{
		Path:    mon.Smartctl.Path,
		Timeout: time.Duration(mon.Smartctl.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		log.Fatalf("smartctl client failed: %v", err)
	}

	ctx := context.Background()

	// ---- status memory client (shared, opt-in) ----
	var statusCli *exportmodbus.Client
	if mon.Export != nil {
		statusCli, err = exportmodbus.New(exportmodbus.Config{
			Endpoint: mon.Export.Endpoint,
			UnitID:   mon.Export.UnitID,
			Timeout:  time.Duration(mon.Export.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			log.Fatalf("export client failed: %v", err)
		}
		defer statusCli.Close()
	}

	// --------------------
	// Per-device pipelines
	// --------------------

	for _, dev := range mon.Devices {
		p, err := poller.New(poller.Config{
			Device:       dev.Path,
			Interval:     time.Duration(mon.Poll.IntervalMs) * time.Millisecond,
			OnChangeOnly: mon.Poll.OnChangeOnly,
		}, client)
		if err != nil {
			log.Fatalf("poller build failed (device=%s): %v", dev.Path, err)
		}

		// Exporter (optional per device)
		var exp *export.Exporter
		if dev.Slot != nil && statusCli != nil {
			exp, err = export.New(export.Config{
				DeviceName: dev.Name,
				Slot:       *dev.Slot,
			}, statusCli)
			if err != nil {
				log.Fatalf("exporter build failed (device=%s): %v", dev.Path, err)
			}
		}

		// ---- channel between poller and consumer ----
		out := make(chan poller.PollResult)

		go func(exp *export.Exporter) {
			for {
				select {
				case <-ctx.Done():
					return
				case res := <-out:
					handleResult(res, exp)
				}
			}
		}(exp)

		// poller producer
		go p.Run(ctx, out)
	}

	// --------------------
	// Block forever (daemon-safe, no deadlock)
	// --------------------
	for {
		time.Sleep(time.Hour)
	}
}

func handleResult(res poller.PollResult, exp *export.Exporter) {
	if res.Err != nil {
		log.Printf("poll failed (device=%s id=%s): %v", res.Device, res.ID, res.Err)
		if exp != nil {
			if err := exp.Deliver(status.Snapshot{Health: status.HealthUnknown}); err != nil {
				log.Printf("status export failed (device=%s): %v", res.Device, err)
			}
		}
		return
	}

	st := res.SelfTest

	line := fmt.Sprintf("device=%s running=%v status=%q", res.Device, st.IsRunning(), st.Status.String)
	if st.Status.RemainingPercent != nil {
		line += fmt.Sprintf(" remaining=%d%%", *st.Status.RemainingPercent)
	}
	if st.Status.Passed != nil {
		line += fmt.Sprintf(" passed=%v", *st.Status.Passed)
	}

	if types, err := st.TestTypes(); err != nil {
		log.Printf("duration table invalid (device=%s): %v", res.Device, err)
	} else if len(types) > 0 {
		parts := make([]string, 0, len(types))
		for _, tt := range types {
			parts = append(parts, fmt.Sprintf("%s=%dmin", tt.Name, tt.Minutes))
		}
		line += " polling=" + strings.Join(parts, ",")
	}

	log.Print(line)

	if exp != nil {
		if err := exp.Deliver(status.FromSelfTest(st)); err != nil {
			log.Printf("status export failed (device=%s): %v", res.Device, err)
		}
	}
}
