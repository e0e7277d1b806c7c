package app

import (
	"testing"

	"receipt-editor/internal/config"
	"receipt-editor/internal/idgen"
	"receipt-editor/internal/logger"
	"receipt-editor/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Log:      config.LogConfig{Level: "debug"},
		Window:   config.WindowConfig{Width: 1024, Height: 768},
		Preview:  config.PreviewConfig{Width: 50, Contact: "+7 (000) 000-00-00"},
		Cashiers: config.DefaultCashiers,
	}
}

func TestNewApplicationWiresLedgerWindow(t *testing.T) {
	fyneApp := test.NewTempApp(t)
	ids := idgen.NewSequence([]string{"12345678"}, []string{"654321"})

	application, err := NewApplication(fyneApp, testConfig(), logger.NoOp{}, ids)
	require.NoError(t, err)
	t.Cleanup(application.Window().Close)

	assert.Equal(t, AppName, application.Window().Title())

	controller := application.Controller()
	controller.CreateReceipt()
	rc := controller.ActiveReceipt()
	require.NotNil(t, rc)
	assert.Equal(t, "Васильев Григорий Павлович", rc.Draft().Cashier)
	assert.Contains(t, rc.View().Preview(), "Контактные данные: +7 (000) 000-00-00")
	assert.Contains(t, rc.View().Preview(), "Номер чека: 654321")

	rc.View().SetFields(views.ReceiptFields{
		Cashier:         "Николаев Евгений Алексеевич",
		Date:            "2024-05-17",
		Time:            "09:30:00",
		CalculationType: "Приход",
	})
	rc.Confirm()
	assert.Equal(t, 1, controller.GetApplicationState().Receipts)

	application.Shutdown()
	application.Shutdown()
}

func TestWindowSizeHasFloor(t *testing.T) {
	assert.Equal(t, fyne.NewSize(MinWindowWidth, MinWindowHeight), windowSize(config.WindowConfig{}))
	assert.Equal(t, fyne.NewSize(1024, 768), windowSize(config.WindowConfig{Width: 1024, Height: 768}))
}
