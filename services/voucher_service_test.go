package services

import (
	"testing"

	"github.com/DungDEV-code/Resort-BookingRoom-sub001/constants"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/models"

	"github.com/stretchr/testify/require"
)

func TestRefreshVoucherStatuses(t *testing.T) {
	db := newTestDB(t)
	now := mustDate(t, "15/09/2026")

	expired := seedVoucher(t, db, 10, 0, "01/08/2026", "31/08/2026", constants.VoucherStatusActive)
	active := seedVoucher(t, db, 10, 0, "01/09/2026", "30/09/2026", constants.VoucherStatusActive)
	// Bị tắt nhầm trong khi vẫn đang trong cửa sổ hiệu lực
	reactivate := seedVoucher(t, db, 10, 0, "05/09/2026", "25/09/2026", constants.VoucherStatusExpired)
	future := seedVoucher(t, db, 10, 0, "01/10/2026", "31/10/2026", constants.VoucherStatusExpired)

	changed, err := RefreshVoucherStatuses(db, now)
	require.NoError(t, err)
	require.Equal(t, int64(2), changed)

	status := func(t *testing.T, id uint) string {
		var voucher models.Voucher
		require.NoError(t, db.First(&voucher, id).Error)
		return voucher.Status
	}

	require.Equal(t, constants.VoucherStatusExpired, status(t, expired.ID))
	require.Equal(t, constants.VoucherStatusActive, status(t, active.ID))
	require.Equal(t, constants.VoucherStatusActive, status(t, reactivate.ID))
	require.Equal(t, constants.VoucherStatusExpired, status(t, future.ID))

	t.Run("chạy lại lần hai không đổi gì", func(t *testing.T) {
		changed, err := RefreshVoucherStatuses(db, now)
		require.NoError(t, err)
		require.Zero(t, changed)
	})
}
