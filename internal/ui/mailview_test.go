package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/clubdeck/clubdeck/internal/mail"
)

func TestListWindowFollowsCursor(t *testing.T) {
	// 24 rows at 5 lines per card fits 4 cards.
	start, end := listWindow(0, 40, 24, 5)
	if start != 0 || end != 4 {
		t.Errorf("top window = [%d,%d), want [0,4)", start, end)
	}
	start, end = listWindow(39, 40, 24, 5)
	if end != 40 || start > 39 {
		t.Errorf("bottom window = [%d,%d), cursor 39 not visible", start, end)
	}
	// Degenerate heights still show the cursor's card.
	start, end = listWindow(7, 10, 0, 5)
	if !(start <= 7 && 7 < end) {
		t.Errorf("zero-height window = [%d,%d), cursor 7 not visible", start, end)
	}
}

func TestMailViewWindowsLongList(t *testing.T) {
	m := NewMailModel(mail.New(nil), "key")
	var items []mail.Item
	for i := 0; i < 40; i++ {
		items = append(items, mail.Item{ID: fmt.Sprint(i), Title: fmt.Sprintf("Parcel %02d", i), Status: "shipped"})
	}
	m, _ = m.Update(MailLoaded{Items: items})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	for i := 0; i < 39; i++ {
		m, _ = m.Update(keyMsg("j"))
	}
	view := m.View()
	if !strings.Contains(view, "Parcel 39") {
		t.Error("cursor item scrolled off screen")
	}
	if strings.Contains(view, "Parcel 00") {
		t.Error("list is not windowed, first item still rendered")
	}
}
