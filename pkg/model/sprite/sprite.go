package sprite

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// Sprite is a PokeAPI media path such as /media/sprites/pokemon/25.png,
// rooted at the directory of the running executable.
type Sprite string

func (s *Sprite) Filepath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("could not get executable directory: %w", err)
	}

	dir := path.Dir(filepath.ToSlash(exe))
	return filepath.FromSlash(path.Join(dir, string(*s))), nil
}

// ForIndex is the image for a dex number inside an images directory laid
// out as 001.png, 002.png, ... A relative dir is taken from the working
// directory.
func ForIndex(dir string, id int) (string, error) {
	p, err := filepath.Abs(filepath.Join(dir, fmt.Sprintf("%03d.png", id)))
	if err != nil {
		return "", fmt.Errorf("could not resolve image for index %d: %w", id, err)
	}

	return p, nil
}

func Exists(p string) (bool, error) {
	_, err := os.Stat(p)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("could not stat sprite %q: %w", p, err)
	}

	return true, nil
}
