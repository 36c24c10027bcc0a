package dto

// UploadVideoForm текстовые поля multipart формы загрузки ролика.
type UploadVideoForm struct {
	Title           string  `form:"title"`
	Description     *string `form:"description"`
	Category        string  `form:"category"`
	Featured        bool    `form:"featured"`
	DurationSeconds *int    `form:"duration_seconds"`
}
