// Package assets resolves texture and shader files from directories on disk.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrAssetMissing is returned when a requested file does not exist.
var ErrAssetMissing = errors.New("asset missing")

// DefaultNamespace is assumed for identifiers without a "namespace:" prefix.
const DefaultNamespace = "minecraft"

// Kind is the class of resource requested from a ResourceProvider.
type Kind int

const (
	Texture Kind = iota
)

func (k Kind) String() string {
	switch k {
	case Texture:
		return "texture"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// NamespacedID is an identifier of the form namespace:category/name.
type NamespacedID struct {
	Namespace string
	Category  string
	Name      string
}

// ParseID splits s into its parts. The namespace may be omitted; category
// and name may not. Only the first two path elements are significant.
func ParseID(s string) (NamespacedID, error) {
	ns, path := DefaultNamespace, s
	if i := strings.IndexByte(s, ':'); i >= 0 {
		ns, path = s[:i], s[i+1:]
	}
	parts := strings.SplitN(path, "/", 3)
	if ns == "" || len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return NamespacedID{}, fmt.Errorf("malformed resource id %q", s)
	}
	return NamespacedID{Namespace: ns, Category: parts[0], Name: parts[1]}, nil
}

func (id NamespacedID) String() string {
	return id.Namespace + ":" + id.Category + "/" + id.Name
}

// ResourceProvider returns raw bytes for a resource.
type ResourceProvider interface {
	Bytes(kind Kind, id NamespacedID) ([]byte, error)
}

// ShaderProvider returns shader source text by file name.
type ShaderProvider interface {
	Shader(name string) (string, error)
}

// Dir serves textures from Root/<namespace>/textures/<category>/<name>.png.
type Dir struct {
	Root string
}

func (d Dir) path(kind Kind, id NamespacedID) (string, error) {
	switch kind {
	case Texture:
		return filepath.Join(d.Root, id.Namespace, "textures", id.Category, id.Name+".png"), nil
	default:
		return "", fmt.Errorf("unsupported resource kind %s", kind)
	}
}

func (d Dir) Bytes(kind Kind, id NamespacedID) ([]byte, error) {
	p, err := d.path(kind, id)
	if err != nil {
		return nil, err
	}
	return readFile(p, id.String())
}

// ShaderDir serves shader sources from Root/<name>.
type ShaderDir struct {
	Root string
}

func (d ShaderDir) Shader(name string) (string, error) {
	if name == "" || filepath.IsAbs(name) || strings.Contains(filepath.ToSlash(name), "..") {
		return "", fmt.Errorf("invalid shader name %q", name)
	}
	b, err := readFile(filepath.Join(d.Root, name), name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func readFile(path, what string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s (%s): %w", what, path, ErrAssetMissing)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", what, err)
	}
	return b, nil
}
