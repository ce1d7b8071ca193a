package dialogue

import (
	"context"
	"strings"
	"testing"

	"github.com/Freeeeeet/route_order_bot/internal/conversation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (h *harness) admin(cmd string) error      { return h.commandAs(testAdminID, cmd) }
func (h *harness) adminText(s string) error    { return h.textAs(testAdminID, s) }
func (h *harness) adminPress(data string) error { return h.pressAs(testAdminID, data) }

func TestNonAdminIsDenied(t *testing.T) {
	h := newHarness(t)
	h.cars.GetOrCreate(context.Background(), "Malibu")

	for _, data := range []string{dataAdminAddCar, dataAdminDelCar, dataAdminListCar, dataAdminAddRoute, dataAdminDelRoute, dataAdminListRoute} {
		require.NoError(t, h.press(data))
		assert.Equal(t, textAdminAlert, h.msg.lastAnswer().Text)
		assert.True(t, h.msg.lastAnswer().Alert)
	}
	assert.Equal(t, 0, h.store.Len())
	assert.Equal(t, []string{"Malibu"}, h.cars.names())
	assert.Empty(t, h.msg.sentTo(testUserID))

	require.NoError(t, h.command(CmdAdmin))
	assert.Equal(t, textAdminOnly, h.msg.lastSent(testUserID).Text)

	for _, cmd := range []string{CmdStats, CmdUsers, CmdAdminHelp} {
		require.NoError(t, h.command(cmd))
		assert.Equal(t, textAdminCommandOnly, h.msg.lastSent(testUserID).Text)
	}
}

func TestNoAdminConfiguredDeniesEveryone(t *testing.T) {
	h := newHarness(t)
	h.settings.settings = nil

	require.NoError(t, h.admin(CmdAdmin))
	assert.Equal(t, textAdminOnly, h.msg.lastSent(testAdminID).Text)
}

func TestAdminPanel(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.admin(CmdAdmin))

	last := h.msg.lastSent(testAdminID)
	assert.Equal(t, textAdminWelcome, last.Text)
	assert.Len(t, buttonData(last.KB), 6)
	assert.Equal(t, 0, h.store.Len())
}

func TestAdminStartGetsAdminCommands(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.admin(CmdStart))

	assert.Len(t, h.msg.commands[testAdminID], 7)
}

func TestAdminAddCarIsIdempotent(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.adminPress(dataAdminAddCar))
	assert.Equal(t, carTexts.addPrompt, h.msg.lastSent(testAdminID).Text)
	st, _, _ := h.store.Get(context.Background(), testAdminID)
	a, ok := st.Admin()
	require.True(t, ok)
	assert.Equal(t, conversation.AdminAddCar, a.Step)

	require.NoError(t, h.adminText(" Malibu "))
	assert.Equal(t, "Mashina 'Malibu' qo'shildi!", h.msg.lastSent(testAdminID).Text)

	require.NoError(t, h.adminPress(dataAdminAddCar))
	require.NoError(t, h.adminText("Malibu"))
	assert.Equal(t, "Mashina 'Malibu' allaqachon mavjud.", h.msg.lastSent(testAdminID).Text)

	assert.Equal(t, []string{"Malibu"}, h.cars.names())
	assert.Equal(t, 0, h.store.Len())
}

func TestAdminBlankNameStaysAtStep(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.adminPress(dataAdminAddRoute))

	require.NoError(t, h.adminText("  "))

	assert.Equal(t, routeTexts.blankName, h.msg.lastSent(testAdminID).Text)
	st, _, _ := h.store.Get(context.Background(), testAdminID)
	a, ok := st.Admin()
	require.True(t, ok)
	assert.Equal(t, conversation.AdminAddRoute, a.Step)
	assert.Empty(t, h.routes.names())
}

func TestAdminNameMustFitButtonData(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.adminPress(dataAdminAddRoute))

	long := strings.Repeat("Маршрут", 6)
	require.Greater(t, len(long), maxCallbackData)
	require.NoError(t, h.adminText(long))

	assert.Equal(t, routeTexts.tooLong, h.msg.lastSent(testAdminID).Text)
	st, _, _ := h.store.Get(context.Background(), testAdminID)
	a, ok := st.Admin()
	require.True(t, ok)
	assert.Equal(t, conversation.AdminAddRoute, a.Step)
	assert.Empty(t, h.routes.names())

	fits := strings.Repeat("Б", maxCallbackData/2)
	require.NoError(t, h.adminText(fits))
	assert.Equal(t, []string{fits}, h.routes.names())

	// каждая кнопка маршрута укладывается в лимит
	require.NoError(t, h.command(CmdStart))
	for _, data := range buttonData(h.msg.lastSent(testUserID).KB) {
		assert.LessOrEqual(t, len(data), maxCallbackData)
	}
}

func TestAdminRejectsReservedNames(t *testing.T) {
	h := newHarness(t)

	for _, name := range []string{dataAdminAddCar, "admin_anything", dataConfirm, dataCancel, dataNoComment, "year_2025", "month_7", "day_1", "person", "cargo"} {
		require.NoError(t, h.adminPress(dataAdminAddCar))
		require.NoError(t, h.adminText(name))
		assert.Equal(t, carTexts.reserved, h.msg.lastSent(testAdminID).Text, name)
	}
	assert.Empty(t, h.cars.names())

	require.NoError(t, h.adminText("Nexia"))
	assert.Equal(t, []string{"Nexia"}, h.cars.names())
}

func TestAdminDeleteRoute(t *testing.T) {
	h := newHarness(t)
	h.routes.GetOrCreate(context.Background(), "Xorazmdan Buxoroga")
	h.routes.GetOrCreate(context.Background(), "Buxorodan Xorazmga")

	require.NoError(t, h.adminPress(dataAdminDelRoute))
	assert.Equal(t, routeTexts.delPrompt+"Xorazmdan Buxoroga, Buxorodan Xorazmga", h.msg.lastSent(testAdminID).Text)

	require.NoError(t, h.adminText("Buxorodan Xorazmga"))
	assert.Equal(t, "Marshrut 'Buxorodan Xorazmga' o'chirildi!", h.msg.lastSent(testAdminID).Text)
	assert.Equal(t, []string{"Xorazmdan Buxoroga"}, h.routes.names())
	assert.Equal(t, 0, h.store.Len())
}

func TestAdminDeleteNotFoundClearsState(t *testing.T) {
	h := newHarness(t)
	h.cars.GetOrCreate(context.Background(), "Malibu")

	require.NoError(t, h.adminPress(dataAdminDelCar))
	require.NoError(t, h.adminText("malibu"))

	assert.Equal(t, "Mashina 'malibu' topilmadi.", h.msg.lastSent(testAdminID).Text)
	assert.Equal(t, []string{"Malibu"}, h.cars.names())
	assert.Equal(t, 0, h.store.Len())
}

func TestAdminDeleteFromEmptyCatalogStaysAtMenu(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.adminPress(dataAdminDelCar))

	assert.Equal(t, carTexts.empty, h.msg.lastSent(testAdminID).Text)
	assert.Equal(t, 0, h.store.Len())
}

func TestAdminList(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.adminPress(dataAdminListRoute))
	assert.Equal(t, routeTexts.empty, h.msg.lastSent(testAdminID).Text)

	h.cars.GetOrCreate(context.Background(), "Cobalt")
	h.cars.GetOrCreate(context.Background(), "Gentra")
	require.NoError(t, h.adminPress(dataAdminListCar))
	assert.Equal(t, carTexts.listTitle+"Cobalt, Gentra", h.msg.lastSent(testAdminID).Text)
	assert.Equal(t, 0, h.store.Len())
}

func TestAdminStepReplacesOrdering(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.admin(CmdStart))
	require.NoError(t, h.adminPress("Xorazmdan Buxoroga"))

	require.NoError(t, h.adminPress(dataAdminAddCar))

	st, _, _ := h.store.Get(context.Background(), testAdminID)
	assert.Equal(t, conversation.FlowAdmin, st.Flow())
	_, ordering := st.Ordering()
	assert.False(t, ordering)
}

func TestAdminStatsAndUsers(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.command(CmdStart))
	require.NoError(t, h.admin(CmdStart))

	require.NoError(t, h.admin(CmdStats))
	assert.Equal(t, "Jami buyurtmalar: 0", h.msg.lastSent(testAdminID).Text)

	require.NoError(t, h.admin(CmdUsers))
	assert.Equal(t, "Jami foydalanuvchilar: 2", h.msg.lastSent(testAdminID).Text)

	require.NoError(t, h.admin(CmdAdminHelp))
	assert.Equal(t, textAdminHelp, h.msg.lastSent(testAdminID).Text)
}
