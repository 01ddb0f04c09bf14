package rules

import "pet-shop-api/internal/platform/logger"

// Deletable es cualquier entidad que sabe describirse al ser borrada.
type Deletable interface {
	DeleteLabel() string
}

func LogDeleted(log logger.Logger, d Deletable) {
	log.Info(d.DeleteLabel()+" deleted", nil)
}
