package db

import (
	"slices"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"thermonet.xyz/thermonet-service/pkg/common"
	"thermonet.xyz/thermonet-service/pkg/models"
)

// Journal persists accepted batches. Only the newest retain readings are kept;
// devices and anomalies are never pruned.
type Journal struct {
	db     *DB
	retain int
}

func NewJournal(db *DB, retain int) *Journal {
	return &Journal{db: db, retain: retain}
}

// Append writes one batch in a single transaction, then drops readings beyond
// the retention window.
func (j *Journal) Append(readings []models.Reading, devices []models.Device, anomalies []models.Anomaly) error {
	return j.db.Conn.Transaction(func(tx *gorm.DB) error {
		if len(readings) > 0 {
			rows := slices.Clone(readings)
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}

		if len(devices) > 0 {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "device_id"}},
				UpdateAll: true,
			}).Create(&devices).Error
			if err != nil {
				return err
			}
		}

		if len(anomalies) > 0 {
			rows := slices.Clone(anomalies)
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}

		return j.prune(tx)
	})
}

func (j *Journal) prune(tx *gorm.DB) error {
	if j.retain <= 0 {
		return nil
	}

	var cutoff []uint
	err := tx.Model(&models.Reading{}).
		Order("seq desc").
		Offset(j.retain).
		Limit(1).
		Pluck("seq", &cutoff).Error
	if err != nil || len(cutoff) == 0 {
		return err
	}

	res := tx.Where("seq <= ?", cutoff[0]).Delete(&models.Reading{})
	if res.Error != nil {
		return res.Error
	}

	common.GetLoggerWith(common.LoggerNameJournal).Debug("Pruned journaled readings",
		zap.Int64("deleted", res.RowsAffected),
		zap.Int("retain", j.retain),
	)
	return nil
}

// LoadRecent returns up to limit readings, oldest first.
func (j *Journal) LoadRecent(limit int) ([]models.Reading, error) {
	var readings []models.Reading
	err := j.db.Conn.Order("seq desc").Limit(limit).Find(&readings).Error
	if err != nil {
		return nil, err
	}
	slices.Reverse(readings)
	return readings, nil
}

func (j *Journal) LoadDevices() ([]models.Device, error) {
	var devices []models.Device
	err := j.db.Conn.Order("seq asc").Find(&devices).Error
	return devices, err
}

// DeviceAnomalies lists a device's anomalies, newest first.
func (j *Journal) DeviceAnomalies(deviceID string) ([]models.Anomaly, error) {
	anomalies := make([]models.Anomaly, 0)
	err := j.db.Conn.
		Where("device_id = ?", deviceID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}).
		Find(&anomalies).Error
	return anomalies, err
}
