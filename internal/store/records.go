package store

import (
	"encoding/json"
	"fmt"

	"github.com/platefit/platefit/schema"
)

// PutUser inserts or replaces a user document.
func (rs *RecordStore) PutUser(user *schema.UserRecord) error {
	if user.ID == "" {
		return fmt.Errorf("user record requires an _id")
	}
	body, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user %q: %w", user.ID, err)
	}
	return rs.putDoc(usersTable, user.ID, body)
}

// GetUser retrieves a user document by identifier. A missing user wraps
// ErrNotFound.
func (rs *RecordStore) GetUser(id string) (*schema.UserRecord, error) {
	body, err := rs.getDoc(usersTable, id)
	if err != nil {
		return nil, err
	}
	var user schema.UserRecord
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("unmarshal user %q: %w", id, err)
	}
	return &user, nil
}

// PutMenu inserts or replaces a menu document.
func (rs *RecordStore) PutMenu(menu *schema.MenuRecord) error {
	if menu.ID == "" {
		return fmt.Errorf("menu record requires an _id")
	}
	body, err := json.Marshal(menu)
	if err != nil {
		return fmt.Errorf("marshal menu %q: %w", menu.ID, err)
	}
	return rs.putDoc(menusTable, menu.ID, body)
}

// GetMenu retrieves a menu document by restaurant identifier. A missing
// menu wraps ErrNotFound.
func (rs *RecordStore) GetMenu(id string) (*schema.MenuRecord, error) {
	body, err := rs.getDoc(menusTable, id)
	if err != nil {
		return nil, err
	}
	var menu schema.MenuRecord
	if err := json.Unmarshal(body, &menu); err != nil {
		return nil, fmt.Errorf("unmarshal menu %q: %w", id, err)
	}
	return &menu, nil
}

// ListUserIDs returns every stored user identifier.
func (rs *RecordStore) ListUserIDs() ([]string, error) {
	return rs.listIDs(usersTable)
}

// ListMenuIDs returns every stored restaurant identifier.
func (rs *RecordStore) ListMenuIDs() ([]string, error) {
	return rs.listIDs(menusTable)
}
