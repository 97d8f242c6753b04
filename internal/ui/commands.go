package ui

import (
	"time"

	"github.com/atomicstack/quicknav/internal/logging"
	"github.com/atomicstack/quicknav/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.ActionResult)
	if !ok {
		return nil
	}
	if result.Err != nil {
		logging.Error(result.Err)
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		return nil
	}
	m.errMsg = ""
	if result.StickThreshold > 0 {
		m.driver.SetStickThreshold(result.StickThreshold)
	}
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	if result.Quit {
		return m.quit()
	}
	return nil
}

func (m *Model) setInfo(info string) {
	m.infoMsg = info
	m.infoExpire = time.Now().Add(infoTTL)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) clearMessages() {
	m.errMsg = ""
	if m.infoMsg != "" && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
}

// Info returns the message shown below the menu.
func (m *Model) Info() string {
	return m.infoMsg
}

// Err returns the last action error shown below the menu.
func (m *Model) Err() string {
	return m.errMsg
}
