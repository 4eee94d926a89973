package course

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

type Level string

const (
	Beginner     Level = "Beginner"
	Intermediate Level = "Intermediate"
	Advanced     Level = "Advanced"
)

// All disables a category or level filter.
const All = "All"

type Course struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Instructor    string  `json:"instructor"`
	Institution   string  `json:"institution"`
	Thumbnail     string  `json:"thumbnail"`
	Duration      string  `json:"duration"`
	Level         Level   `json:"level"`
	Category      string  `json:"category"`
	Rating        float64 `json:"rating"`
	EnrolledCount int     `json:"enrolledCount"`
	Price         Price   `json:"price"`
}

type EnrolledCourse struct {
	Course
	Progress  int  `json:"progress"`
	StartDate Date `json:"startDate"`
}

type ProgressUp struct {
	Progress *int `json:"progress" validate:"required,gte=0,lte=100"`
}

// Price is either a whole amount in USD or free of charge. On the wire it is
// a JSON number or the string "Free".
type Price struct {
	Amount int
	Free   bool
}

const freeLabel = "Free"

func FreePrice() Price {
	return Price{Free: true}
}

func USD(amount int) Price {
	return Price{Amount: amount}
}

func (p Price) String() string {
	if p.Free {
		return freeLabel
	}
	return fmt.Sprintf("$%d", p.Amount)
}

func (p Price) MarshalJSON() ([]byte, error) {
	if p.Free {
		return json.Marshal(freeLabel)
	}
	return json.Marshal(p.Amount)
}

func (p *Price) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(data, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s != freeLabel {
			return fmt.Errorf("invalid price %q", s)
		}
		*p = FreePrice()
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid price: %w", err)
	}
	*p = USD(n)
	return nil
}

const dateLayout = "2006-01-02"

// Date is a calendar day, encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func MustDate(s string) Date {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return Date{t}
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}
