// Package demo assembles the example settings tree driven by the terminal UI.
package demo

import (
	"fmt"

	"github.com/atomicstack/menu-control/internal/menu"
)

// Build populates the session's root menu with a settings-style tree that
// exercises every component variant. notify receives a status line whenever a
// leaf entry is selected.
func Build(s *menu.Session, notify func(string)) error {
	if notify == nil {
		notify = func(string) {}
	}
	announce := func(c menu.Component) {
		notify(fmt.Sprintf("selected %s", c.Name()))
	}

	root := s.RootMenu()

	display := menu.NewMenu("display", "🖥", nil)
	brightness, err := menu.NewNumericItem("brightness", "☀", announce, 70, 0, 100, 5, menu.FormatUnit(0, "%"))
	if err != nil {
		return err
	}
	display.AddItem(brightness)
	contrast, err := menu.NewNumericItem("contrast", "◐", announce, 50, 0, 100, 5, menu.FormatUnit(0, "%"))
	if err != nil {
		return err
	}
	display.AddItem(contrast)
	display.AddItem(menu.NewBackItem("back", "", nil, s))
	root.AddMenu(display)

	sound := menu.NewMenu("sound", "♪", nil)
	volume, err := menu.NewNumericItem("volume", "", announce, 4, 0, 10, 1, menu.FormatFixed(0))
	if err != nil {
		return err
	}
	sound.AddItem(volume)
	sound.AddItem(menu.NewItem("mute", "", announce))
	sound.AddItem(menu.NewBackItem("back", "", nil, s))
	root.AddMenu(sound)

	network := menu.NewMenu("network", "⇅", nil)
	network.AddItem(menu.NewItem("wifi", "", announce))
	network.AddItem(menu.NewItem("bluetooth", "", announce))
	advanced := menu.NewMenu("advanced", "", nil)
	mtu, err := menu.NewNumericItem("mtu", "", announce, 1500, 576, 9000, 100, menu.FormatFixed(0))
	if err != nil {
		return err
	}
	advanced.AddItem(mtu)
	advanced.AddItem(menu.NewItem("dns", "", announce))
	advanced.AddItem(menu.NewBackItem("back", "", nil, s))
	network.AddMenu(advanced)
	network.AddItem(menu.NewBackItem("back", "", nil, s))
	root.AddMenu(network)

	root.AddItem(menu.NewItem("about", "ℹ", func(menu.Component) {
		notify("menu-control demo")
	}))

	return nil
}
