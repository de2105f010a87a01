package subscribers

// Image is the stored metadata for a processed upload. The file itself
// lives under the static uploads directory.
type Image struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Size         int    `json:"size"`
	UploadedAt   string `json:"uploaded_at"`
}

// SaveImage inserts or replaces image metadata by filename.
func (s *Store) SaveImage(img Image) error {
	_, err := s.db.Exec(`
		INSERT INTO images (filename, original_name, width, height, size_bytes, uploaded_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(filename) DO UPDATE SET
			original_name = excluded.original_name,
			width = excluded.width,
			height = excluded.height,
			size_bytes = excluded.size_bytes,
			uploaded_at = excluded.uploaded_at
	`, img.Filename, img.OriginalName, img.Width, img.Height, img.Size, img.UploadedAt)
	return err
}

// ListImages returns all image metadata, newest upload first.
func (s *Store) ListImages() ([]Image, error) {
	rows, err := s.db.Query(`
		SELECT filename, original_name, width, height, size_bytes, uploaded_at
		FROM images
		ORDER BY uploaded_at DESC, filename
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []Image
	for rows.Next() {
		var img Image
		if err := rows.Scan(&img.Filename, &img.OriginalName, &img.Width, &img.Height, &img.Size, &img.UploadedAt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// GetImage returns the metadata for one filename.
func (s *Store) GetImage(filename string) (Image, error) {
	var img Image
	err := s.db.QueryRow(`
		SELECT filename, original_name, width, height, size_bytes, uploaded_at
		FROM images
		WHERE filename = ?
	`, filename).Scan(&img.Filename, &img.OriginalName, &img.Width, &img.Height, &img.Size, &img.UploadedAt)
	return img, err
}

// DeleteImage removes image metadata by filename. Returns ErrNotFound
// when nothing was stored under that name.
func (s *Store) DeleteImage(filename string) error {
	res, err := s.db.Exec(`DELETE FROM images WHERE filename = ?`, filename)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
