package Models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// maxPageSize caps the list page size regardless of what the caller asks for.
const maxPageSize = 100

type Patient struct {
	gorm.Model
	FirstName      string `gorm:"size:255" json:"first_name"`
	LastName       string `gorm:"size:255" json:"last_name"`
	DateOfBirth    string `gorm:"size:64" json:"date_of_birth"`
	Gender         string `gorm:"size:32" json:"gender"`
	Address        string `gorm:"size:255" json:"address"`
	PhoneNumber    string `gorm:"size:64" json:"phone_number"`
	// uniqueness only among live rows, so a deleted patient's email is
	// reusable immediately
	Email          string `gorm:"size:255;not null;uniqueIndex:udx_patients_email,where:deleted_at IS NULL" json:"email"`
	MedicalHistory string `json:"medical_history"`
	IsActive       bool   `gorm:"default:true" json:"is_active"`
	Users          []User `gorm:"many2many:patient_assignments;" json:"-"`
}

// CreatePatient inserts the record; a duplicate email is rejected by the
// unique index and rolled back.
func CreatePatient(patient *Patient) error {
	tx := DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Create(patient).Error; err != nil {
		tx.Rollback()
		if dup := translateConstraint(err); dup != nil {
			return dup
		}
		return err
	}
	// reload so database defaults (is_active) are reflected
	if err := tx.First(patient, patient.ID).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func GetPatient(id uint) (Patient, error) {
	var patient Patient
	if err := DB.First(&patient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return patient, ErrNotFound
		}
		return patient, err
	}
	return patient, nil
}

func FetchPatients(skip, limit int) ([]Patient, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	var patients []Patient
	if err := DB.Offset(skip).Limit(limit).Order("id").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

// UpdatePatient applies the draft to an existing record in one transaction.
// When the email changes it is re-checked against other patients before the
// write, and the unique index backstops the race either way.
func UpdatePatient(id uint, draft Patient) (Patient, error) {
	tx := DB.Begin()
	if tx.Error != nil {
		return Patient{}, tx.Error
	}

	var patient Patient
	if err := tx.First(&patient, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Patient{}, ErrNotFound
		}
		return Patient{}, err
	}

	if draft.Email != patient.Email {
		var count int64
		if err := tx.Model(&Patient{}).Where("email = ? AND id <> ?", draft.Email, id).Count(&count).Error; err != nil {
			tx.Rollback()
			return Patient{}, err
		}
		if count > 0 {
			tx.Rollback()
			return Patient{}, ErrDuplicateEmail
		}
	}

	updates := map[string]interface{}{
		"first_name":      draft.FirstName,
		"last_name":       draft.LastName,
		"date_of_birth":   draft.DateOfBirth,
		"gender":          draft.Gender,
		"address":         draft.Address,
		"phone_number":    draft.PhoneNumber,
		"email":           draft.Email,
		"medical_history": draft.MedicalHistory,
	}
	if err := tx.Model(&patient).Updates(updates).Error; err != nil {
		tx.Rollback()
		if dup := translateConstraint(err); dup != nil {
			return Patient{}, dup
		}
		return Patient{}, err
	}

	if err := tx.First(&patient, id).Error; err != nil {
		tx.Rollback()
		return Patient{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return Patient{}, err
	}
	return patient, nil
}

// DeletePatient removes the record and its assignment rows in one
// transaction.
func DeletePatient(id uint) error {
	tx := DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var patient Patient
	if err := tx.First(&patient, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := tx.Model(&patient).Association("Users").Clear(); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Delete(&patient).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// AssignUser grants the account read access to the patient. Both sides must
// exist.
func AssignUser(patientID, userID uint) error {
	patient, err := GetPatient(patientID)
	if err != nil {
		return err
	}
	user, err := GetUserByID(userID)
	if err != nil {
		return err
	}
	return DB.Model(&patient).Association("Users").Append(&user)
}

func UnassignUser(patientID, userID uint) error {
	patient, err := GetPatient(patientID)
	if err != nil {
		return err
	}
	user, err := GetUserByID(userID)
	if err != nil {
		return err
	}
	return DB.Model(&patient).Association("Users").Delete(&user)
}

// IsAssigned reports whether the account has an assignment row for the
// patient.
func IsAssigned(userID, patientID uint) (bool, error) {
	var count int64
	err := DB.Table("patient_assignments").
		Where("user_id = ? AND patient_id = ?", userID, patientID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// PurgeDeletedPatients permanently removes patients that were soft deleted
// more than retention ago, together with any assignment rows left behind.
// Returns the number of patients purged.
func PurgeDeletedPatients(db *gorm.DB, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)

	var ids []uint
	err := db.Unscoped().Model(&Patient{}).
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		return 0, tx.Error
	}
	if err := tx.Exec("DELETE FROM patient_assignments WHERE patient_id IN ?", ids).Error; err != nil {
		tx.Rollback()
		return 0, err
	}
	result := tx.Unscoped().Delete(&Patient{}, ids)
	if result.Error != nil {
		tx.Rollback()
		return 0, result.Error
	}
	if err := tx.Commit().Error; err != nil {
		return 0, err
	}
	return result.RowsAffected, nil
}
