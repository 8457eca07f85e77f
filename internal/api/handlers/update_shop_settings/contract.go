package update_shop_settings

import (
	"context"

	"github.com/m04kA/BRB-ScheduleService/internal/service/settings/models"
)

type SettingsService interface {
	Update(ctx context.Context, req *models.UpdateShopSettingsRequest) (*models.ShopSettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
