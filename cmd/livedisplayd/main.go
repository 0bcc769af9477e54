package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/cmarkham/livedisplay/internal/eventlog"
	"github.com/cmarkham/livedisplay/internal/hardware"
	"github.com/cmarkham/livedisplay/internal/livedisplay"
	"github.com/cmarkham/livedisplay/internal/settings"
	"github.com/cmarkham/livedisplay/internal/statusbar"
	"github.com/cmarkham/livedisplay/internal/weather"
)

// #region config

type config struct {
	DBPath       string `env:"LIVEDISPLAY_DB" envDefault:"livedisplay.db"`
	HardwareAddr string `env:"HARDWARE_ADDR" envDefault:"localhost:50051"`
	User         int    `env:"LIVEDISPLAY_USER" envDefault:"0"`

	// Optional color temperature overrides in kelvin. Zero leaves the
	// stored (or built-in) value untouched.
	DayTemperature   int `env:"LIVEDISPLAY_DAY_TEMP" envDefault:"0"`
	NightTemperature int `env:"LIVEDISPLAY_NIGHT_TEMP" envDefault:"0"`
}

// #endregion config

// #region main
func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	// Initialize settings store
	store, err := settings.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	elog, err := eventlog.New(store.DB())
	if err != nil {
		log.Fatalf("failed to open event log: %v", err)
	}

	if cfg.DayTemperature > 0 {
		if err := store.PutInt(cfg.User, livedisplay.KeyDayTemperature, cfg.DayTemperature); err != nil {
			log.Fatalf("failed to set day temperature: %v", err)
		}
	}
	if cfg.NightTemperature > 0 {
		if err := store.PutInt(cfg.User, livedisplay.KeyNightTemperature, cfg.NightTemperature); err != nil {
			log.Fatalf("failed to set night temperature: %v", err)
		}
	}

	// Connect to the hardware broker. The client serves safe defaults
	// until (and unless) the dial succeeds.
	hw := hardware.NewClient()
	remote, err := hardware.DialRemote(cfg.HardwareAddr)
	if err != nil {
		log.Printf("hardware broker at %s unavailable: %v", cfg.HardwareAddr, err)
	} else {
		defer remote.Close()
		hw.Connect(remote)
	}

	// Tile host
	tiles := statusbar.NewBroker()
	tiles.Connect(statusbar.NewLocalService())

	svc := livedisplay.NewService(store, livedisplay.LogNotifier{}, cfg.User)
	defer svc.Close()
	svc.SetRecorder(elog)
	svc.Boot(
		livedisplay.NewDisplayHardwareController(hw, store, cfg.User),
		livedisplay.NewColorTemperatureController(hw, store, cfg.User),
		livedisplay.NewOutdoorModeController(hw),
	)

	fmt.Println("LiveDisplay service ready.")
	fmt.Printf("  DB: %s | Hardware: %s (connected=%v)\n", cfg.DBPath, cfg.HardwareAddr, hw.Connected())
	fmt.Printf("  Capabilities: %#x\n", uint64(svc.Capabilities()))
	fmt.Println("Commands: display on|off|doze, lowpower on|off, night on|off, mode N, weather CITY TEMP, tiles, dump, quit")

	repl(svc, store, tiles, cfg.User)
}

// #endregion main

// #region repl

func repl(svc *livedisplay.Service, store settings.Store, tiles *statusbar.Broker, user int) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			return

		case "display":
			if len(fields) != 2 {
				fmt.Println("usage: display on|off|doze")
				continue
			}
			state := livedisplay.ParseDisplayState(fields[1])
			if state == livedisplay.DisplayUnknown {
				fmt.Printf("unknown display state %q\n", fields[1])
				continue
			}
			svc.PostDisplayState(state)

		case "lowpower":
			on, err := parseOnOff(fields)
			if err != nil {
				fmt.Println(err)
				continue
			}
			svc.PostLowPowerMode(on)

		case "night":
			on, err := parseOnOff(fields)
			if err != nil {
				fmt.Println(err)
				continue
			}
			svc.PostTwilight(livedisplay.TwilightState{IsNight: on})

		case "mode":
			if len(fields) != 2 {
				fmt.Println("usage: mode N (0=off 1=night 2=auto 3=outdoor 4=day)")
				continue
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || !livedisplay.Mode(n).Valid() {
				fmt.Printf("invalid mode %q\n", fields[1])
				continue
			}
			if err := store.PutInt(user, livedisplay.KeyTemperatureMode, n); err != nil {
				log.Printf("mode write error: %v", err)
				continue
			}
			svc.PostModeChanged()

		case "weather":
			if len(fields) != 3 {
				fmt.Println("usage: weather CITY TEMP")
				continue
			}
			temp, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				fmt.Printf("invalid temperature %q\n", fields[2])
				continue
			}
			publishWeatherTile(tiles, user, fields[1], temp)

		case "tiles":
			svc.Flush()
			for _, t := range tiles.Tiles(user) {
				fmt.Printf("  %s id=%s label=%q text=%q blob=%dB\n",
					t.Key, t.InstanceID, t.Tile.Label, t.Tile.ContentText, len(t.Tile.ContentBlob))
			}

		case "dump":
			svc.Flush()
			svc.Dump(os.Stdout)

		default:
			fmt.Printf("unknown command %q\n", fields[0])
		}
	}
}

func parseOnOff(fields []string) (bool, error) {
	if len(fields) != 2 || (fields[1] != "on" && fields[1] != "off") {
		return false, fmt.Errorf("usage: %s on|off", fields[0])
	}
	return fields[1] == "on", nil
}

// publishWeatherTile encodes an observation into the tile's content
// blob, the same frame format the weather providers ship.
func publishWeatherTile(tiles *statusbar.Broker, user int, city string, temp float64) {
	info := weather.New(city, temp, weather.UnitCelsius)
	key := statusbar.TileKey{User: user, Pkg: "org.cyanogenmod.weather", Tag: "forecast", ID: 1}
	id := tiles.Publish(key, statusbar.CustomTile{
		Label:        "Weather",
		ContentText:  fmt.Sprintf("%s %.1f°C", city, temp),
		Icon:         "ic_weather",
		IntentAction: "cyanogenmod.intent.action.WEATHER_SETTINGS",
		ContentBlob:  weather.Encode(info),
	})
	fmt.Printf("published tile %s id=%s\n", key, id)
}

// #endregion repl
