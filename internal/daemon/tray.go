//go:build windows
// +build windows

package daemon

import (
	"fmt"
	"strings"
	"syscall"
	"unsafe"

	"fyne.io/systray"
	"go.uber.org/zap"
)

var (
	user32      = syscall.NewLazyDLL("user32.dll")
	messageBoxW = user32.NewProc("MessageBoxW")
)

const (
	MB_OK              = 0x00000000
	MB_ICONINFORMATION = 0x00000040
)

// TrayApp represents system tray application
type TrayApp struct {
	daemon *Daemon
	logger *zap.Logger
	quit   chan struct{}
}

// NewTrayApp creates a new system tray application
func NewTrayApp(daemon *Daemon, logger *zap.Logger) (*TrayApp, error) {
	return &TrayApp{
		daemon: daemon,
		logger: logger,
		quit:   make(chan struct{}),
	}, nil
}

// Run starts the system tray application (blocks until Quit)
func (t *TrayApp) Run() {
	systray.Run(t.onReady, t.onExit)
}

func (t *TrayApp) onReady() {
	systray.SetIcon(calendarIcon())
	systray.SetTitle("SM")
	systray.SetTooltip("Gestor de horarios")

	mCheckNow := systray.AddMenuItem("Check Now", "Look for upcoming vacations now")
	systray.AddSeparator()
	mStatus := systray.AddMenuItem("Status", "Show reminder status")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Exit the application")

	// Start daemon logic in background
	go func() {
		if err := t.daemon.runScheduledLogic(); err != nil {
			t.logger.Error("Daemon loop failed", zap.Error(err))
			systray.Quit()
		}
	}()

	// Handle menu item clicks
	go func() {
		for {
			select {
			case <-mCheckNow.ClickedCh:
				t.logger.Info("Check Now clicked from tray")
				go t.daemon.CheckNow()
			case <-mStatus.ClickedCh:
				t.logger.Info("Status clicked from tray")
				t.showStatus()
			case <-mQuit.ClickedCh:
				t.logger.Info("Quit clicked from tray")
				t.daemon.Stop()
				systray.Quit()
				return
			case <-t.quit:
				systray.Quit()
				return
			}
		}
	}()
}

func (t *TrayApp) onExit() {
	t.logger.Info("System tray exited")
}

// Stop stops the system tray application
func (t *TrayApp) Stop() {
	select {
	case <-t.quit:
	default:
		close(t.quit)
	}
}

// ShowNotification shows a notification (Windows only)
func (t *TrayApp) ShowNotification(title, message string) {
	// fyne.io/systray has no balloon support, the tooltip carries the last message
	systray.SetTooltip(title + "\n" + message)
	t.logger.Info("Notification", zap.String("title", title), zap.String("message", message))
}

func (t *TrayApp) showStatus() {
	status := t.daemon.GetStatus()
	t.logger.Info("Current status", zap.Any("status", status))

	reminders, _ := status["reminders"].([]string)
	who := "ninguna"
	if len(reminders) > 0 {
		who = strings.Join(reminders, ", ")
	}

	shifts, _ := status["shifts"].([]string)
	today := "ninguno"
	if len(shifts) > 0 {
		today = strings.Join(shifts, ", ")
	}

	message := fmt.Sprintf(
		"Horario: %v\nProxima revision: %v\nUltima revision: %v\nVacaciones proximas: %s\nHorarios de hoy: %s",
		status["schedule"],
		status["next_run"],
		status["last_run_date"],
		who,
		today,
	)
	showMessageBox(ReminderTitle, message)
}

func showMessageBox(title, message string) {
	titlePtr, _ := syscall.UTF16PtrFromString(title)
	messagePtr, _ := syscall.UTF16PtrFromString(message)
	messageBoxW.Call(
		0,
		uintptr(unsafe.Pointer(messagePtr)),
		uintptr(unsafe.Pointer(titlePtr)),
		uintptr(MB_OK|MB_ICONINFORMATION),
	)
}
