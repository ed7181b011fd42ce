package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryFile struct {
	absPath string
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// ReadDir lists entries in the order they were added, which lets tests
// stand in for an unsorted directory listing.
type MemoryFileSystem struct {
	files map[string]*memoryFile // map of absolute path -> file
	order []string               // absolute paths in insertion order
	root  string                 // root directory path
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		root:  root,
	}
	mfs.put(&memoryFile{
		absPath: root,
		info:    newDirInfo(path.Base(root)),
	})
	return mfs
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	absPath := mfs.resolve(filePath)
	mfs.ensureDirectoriesExist(absPath)

	contentBytes := []byte(content)
	mfs.put(&memoryFile{
		absPath: absPath,
		content: contentBytes,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(contentBytes)),
			mode:    0644,
			modTime: modTime,
		},
	})
}

// AddDir adds an empty directory.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.resolve(dirPath)
	mfs.ensureDirectoriesExist(absPath)
	if _, exists := mfs.files[absPath]; !exists {
		mfs.put(&memoryFile{absPath: absPath, info: newDirInfo(path.Base(absPath))})
	}
}

func newDirInfo(name string) *memoryFileInfo {
	return &memoryFileInfo{
		name:    name,
		mode:    0755 | fs.ModeDir,
		modTime: time.Now(),
		isDir:   true,
	}
}

func (mfs *MemoryFileSystem) put(f *memoryFile) {
	if _, exists := mfs.files[f.absPath]; !exists {
		mfs.order = append(mfs.order, f.absPath)
	}
	mfs.files[f.absPath] = f
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == mfs.root {
		return
	}
	if _, exists := mfs.files[dir]; exists {
		return
	}

	mfs.ensureDirectoriesExist(dir)
	mfs.put(&memoryFile{absPath: dir, info: newDirInfo(path.Base(dir))})
}

// resolve maps a caller path to an absolute path within the virtual filesystem.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) lookup(op, p string) (*memoryFile, error) {
	file, exists := mfs.files[mfs.resolve(p)]
	if !exists {
		return nil, &fs.PathError{Op: op, Path: p, Err: fs.ErrNotExist}
	}
	return file, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	file, err := mfs.lookup("open", filePath)
	if err != nil {
		return nil, err
	}
	if file.info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fmt.Errorf("is a directory")}
	}

	content := make([]byte, len(file.content))
	copy(content, file.content)
	return content, nil
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]DirEntry, error) {
	dir, err := mfs.lookup("open", dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory: %w", err)
	}
	if !dir.info.IsDir() {
		return nil, fmt.Errorf("failed to read directory: %w",
			&fs.PathError{Op: "readdirent", Path: dirPath, Err: fmt.Errorf("not a directory")})
	}

	prefix := strings.TrimSuffix(dir.absPath, "/") + "/"
	entries := []DirEntry{}
	for _, p := range mfs.order {
		if !strings.HasPrefix(p, prefix) || strings.Contains(p[len(prefix):], "/") {
			continue
		}
		entries = append(entries, fs.FileInfoToDirEntry(mfs.files[p].info))
	}
	return entries, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	file, err := mfs.lookup("stat", statPath)
	if err != nil {
		return nil, err
	}
	return file.info, nil
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
