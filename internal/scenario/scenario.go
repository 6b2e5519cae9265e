package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hotel-reservation-go/internal/models"

	"gopkg.in/yaml.v2"
)

const dateLayout = "2006-01-02"

// Scenario is an ordered script of ledger operations.
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step holds exactly one action.
type Step struct {
	Label   string       `yaml:"label"`
	SetRoom *SetRoomStep `yaml:"set_room"`
	SetUser *SetUserStep `yaml:"set_user"`
	Book    *BookStep    `yaml:"book"`
}

type SetRoomStep struct {
	Number int             `yaml:"number"`
	Type   models.RoomType `yaml:"type"`
	Price  int64           `yaml:"price"`
}

type SetUserStep struct {
	Id      int   `yaml:"id"`
	Balance int64 `yaml:"balance"`
}

type BookStep struct {
	User     int    `yaml:"user"`
	Room     int    `yaml:"room"`
	CheckIn  string `yaml:"check_in"`
	CheckOut string `yaml:"check_out"`
}

// Dates parses the step's check-in and check-out dates.
func (b *BookStep) Dates() (time.Time, time.Time, error) {
	in, err := time.Parse(dateLayout, b.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid check_in %q: %w", b.CheckIn, err)
	}
	out, err := time.Parse(dateLayout, b.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid check_out %q: %w", b.CheckOut, err)
	}
	return in, out, nil
}

// Load reads and validates a scenario file. Relative paths resolve against
// the working directory.
func Load(scenarioFile string) (*Scenario, error) {
	var scenarioPath string
	if filepath.IsAbs(scenarioFile) {
		scenarioPath = scenarioFile
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		scenarioPath = filepath.Join(wd, scenarioFile)
	}

	data, err := os.ReadFile(scenarioPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", scenarioFile, err)
	}

	return Parse(data)
}

// Parse decodes and validates scenario YAML.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.UnmarshalStrict(data, &sc); err != nil {
		return nil, fmt.Errorf("unable to parse scenario: %w", err)
	}

	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("scenario has no steps")
	}
	for i := range sc.Steps {
		if err := sc.Steps[i].validate(); err != nil {
			return nil, fmt.Errorf("step at index %d: %w", i, err)
		}
	}
	return &sc, nil
}

// validate checks the shape of a step. Value checks such as positive ids
// are left to the ledger so they surface as step results.
func (s *Step) validate() error {
	actions := 0
	if s.SetRoom != nil {
		actions++
		t, err := models.ParseRoomType(string(s.SetRoom.Type))
		if err != nil {
			return err
		}
		s.SetRoom.Type = t
	}
	if s.SetUser != nil {
		actions++
	}
	if s.Book != nil {
		actions++
		if _, _, err := s.Book.Dates(); err != nil {
			return err
		}
	}
	if actions != 1 {
		return fmt.Errorf("expected exactly one of set_room, set_user, book; got %d", actions)
	}
	return nil
}

// Default returns the reference demonstration: three rooms, two users,
// five booking attempts and a final change to room 1.
func Default() *Scenario {
	room := func(label string, number int, t models.RoomType, price int64) Step {
		return Step{Label: label, SetRoom: &SetRoomStep{Number: number, Type: t, Price: price}}
	}
	user := func(label string, id int, balance int64) Step {
		return Step{Label: label, SetUser: &SetUserStep{Id: id, Balance: balance}}
	}
	book := func(label string, u, r int, in, out string) Step {
		return Step{Label: label, Book: &BookStep{User: u, Room: r, CheckIn: in, CheckOut: out}}
	}

	return &Scenario{
		Name: "hotel reservation demo",
		Steps: []Step{
			room("Room 1 created (STANDARD, 1000/night)", 1, models.RoomTypeStandard, 1000),
			room("Room 2 created (JUNIOR, 2000/night)", 2, models.RoomTypeJunior, 2000),
			room("Room 3 created (SUITE, 3000/night)", 3, models.RoomTypeSuite, 3000),
			user("User 1 created (Balance: 5000)", 1, 5000),
			user("User 2 created (Balance: 10000)", 2, 10000),
			book("User 1 booking Room 2 (30/06-07/07)", 1, 2, "2026-06-30", "2026-07-07"),
			book("User 1 booking Room 2 (07/07-30/06)", 1, 2, "2026-07-07", "2026-06-30"),
			book("User 1 booking Room 1 (07/07-08/07)", 1, 1, "2026-07-07", "2026-07-08"),
			book("User 2 booking Room 1 (07/07-09/07)", 2, 1, "2026-07-07", "2026-07-09"),
			book("User 2 booking Room 3 (07/07-08/07)", 2, 3, "2026-07-07", "2026-07-08"),
			room("Room 1 updated to SUITE with price 10000/night", 1, models.RoomTypeSuite, 10000),
		},
	}
}
