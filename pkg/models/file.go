package models

// FileInfo describes a selected file as the user's client declared it.
type FileInfo struct {
	Name string `json:"name"`
	MIME string `json:"mime"`
	Size int64  `json:"size"`
}

// StoredFile is a file kept in a draft until submission. RemoteID is the
// Telegram file id (or a local path for the CLI).
type StoredFile struct {
	FileInfo
	RemoteID         string `json:"remote_id"`
	PreviewMessageID int    `json:"preview_message_id,omitempty"`
	PreviewChatID    int64  `json:"preview_chat_id,omitempty"`
}
