package models

import "time"

// Draft is the in-progress registration form of one chat user.
type Draft struct {
	ID         string                `json:"id"`
	TelegramID int64                 `json:"telegram_id"`
	State      string                `json:"state"`
	Form       RegistrationForm      `json:"form"`
	Files      map[string]StoredFile `json:"files,omitempty"`
	// ReturnToConfirm is set when a field is being corrected from the
	// confirmation screen.
	ReturnToConfirm bool      `json:"return_to_confirm,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (d *Draft) SetFile(slot string, f StoredFile) {
	if d.Files == nil {
		d.Files = make(map[string]StoredFile)
	}
	d.Files[slot] = f
}

func (d *Draft) RemoveFile(slot string) (StoredFile, bool) {
	f, ok := d.Files[slot]
	if ok {
		delete(d.Files, slot)
	}
	return f, ok
}
