/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package report

import (
	"fmt"
	"io"

	"hotel-reservation-go/internal/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Source is the read side of the reservation ledger.
type Source interface {
	Rooms() []models.Room
	Users() []models.User
	Bookings() []models.Booking
}

// JournalSource additionally exposes per-user balance history.
type JournalSource interface {
	Source
	TransactionHistory(userId int, limit, offset int) ([]models.JournalEntry, error)
}

// Printer renders ledger contents as a console report. Listings arrive
// already ordered newest first and are printed as given.
type Printer struct {
	w          io.Writer
	width      int
	dateLayout string
	amounts    *message.Printer
}

func NewPrinter(w io.Writer, cfg models.ReportConfig) *Printer {
	width := cfg.Width
	if width <= 2 {
		width = DefaultWidth
	}
	layout := cfg.DateLayout
	if layout == "" {
		layout = "02/01/2006"
	}
	tag := cfg.Language
	if tag == language.Und {
		tag = language.English
	}
	return &Printer{
		w:          w,
		width:      width,
		dateLayout: layout,
		amounts:    message.NewPrinter(tag),
	}
}

func (p *Printer) amount(v int64) string {
	return p.amounts.Sprintf("%d", v)
}

// PrintAll prints rooms followed by bookings.
func (p *Printer) PrintAll(src Source) {
	p.PrintAllRooms(src.Rooms())
	p.PrintAllBookings(src.Bookings())
}

func (p *Printer) PrintAllRooms(rooms []models.Room) {
	p.header("ALL ROOMS (Latest to Oldest)")
	for _, room := range rooms {
		fmt.Fprintf(p.w, "Room %d | Type: %s | Price/Night: %s\n",
			room.Number, room.Type, p.amount(room.PricePerNight))
	}
	p.footer(fmt.Sprintf("%d rooms", len(rooms)))
}

// PrintAllBookings prints each booking with the room and balance values
// captured when it was made.
func (p *Printer) PrintAllBookings(bookings []models.Booking) {
	p.header("ALL BOOKINGS (Latest to Oldest)")
	for _, b := range bookings {
		fmt.Fprintf(p.w, "\n┌─ Booking ID: %d\n", b.Id)
		fmt.Fprintf(p.w, "│  Reference: %s\n", b.Reference)
		p.boxSeparator()
		fmt.Fprintf(p.w, "%s User ID: %d (Balance at booking: %s)\n",
			BoxPrefix(false), b.UserId, p.amount(b.UserBalanceSnapshot))
		fmt.Fprintf(p.w, "%s Room: %d | Type: %s | Price/Night: %s\n",
			BoxPrefix(false), b.RoomNumber, b.RoomTypeSnapshot, p.amount(b.RoomPriceSnapshot))
		fmt.Fprintf(p.w, "%s Check-in: %s\n", BoxPrefix(false), b.CheckIn.Format(p.dateLayout))
		fmt.Fprintf(p.w, "%s Check-out: %s\n", BoxPrefix(false), b.CheckOut.Format(p.dateLayout))
		fmt.Fprintf(p.w, "%s Total Price: %s (%d nights)\n", BoxPrefix(true), p.amount(b.TotalPrice), b.Nights)
	}
	p.footer(fmt.Sprintf("%d bookings", len(bookings)))
}

func (p *Printer) PrintAllUsers(users []models.User) {
	p.header("ALL USERS (Latest to Oldest)")
	for _, user := range users {
		fmt.Fprintf(p.w, "User ID: %d | Balance: %s\n", user.Id, p.amount(user.Balance))
	}
	p.footer(fmt.Sprintf("%d users", len(users)))
}

// PrintJournals prints every user's balance history, newest entry first.
func (p *Printer) PrintJournals(src JournalSource) error {
	p.header("BALANCE JOURNAL")
	for _, user := range src.Users() {
		entries, err := src.TransactionHistory(user.Id, 0, 0)
		if err != nil {
			return fmt.Errorf("failed to get history for user %d: %w", user.Id, err)
		}

		fmt.Fprintf(p.w, "\n┌─ User: %d\n", user.Id)
		fmt.Fprintf(p.w, "│  Entries: %d\n", len(entries))
		p.boxSeparator()
		for i, e := range entries {
			isLast := i == len(entries)-1
			fmt.Fprintf(p.w, "%s %-14s %10s  %s -> %s\n",
				BoxPrefix(isLast), e.Type, p.amount(e.Amount), p.amount(e.BalanceBefore), p.amount(e.BalanceAfter))
			if e.BookingId != 0 {
				fmt.Fprintf(p.w, "%s   booking %d\n", BoxDetailPrefix(isLast), e.BookingId)
			}
		}
	}
	p.footer("end of journal")
	return nil
}
