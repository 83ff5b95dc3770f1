package binder

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"reflect"
	"strings"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

// FileUpload represents an uploaded file with its metadata and content.
type FileUpload struct {
	// Filename is the original filename provided by the client
	Filename string

	// Size is the size of the file in bytes
	Size int64

	// Header contains the MIME header fields for this file part
	Header textproto.MIMEHeader

	// Content holds the file data in memory
	Content []byte
}

// ContentType returns the MIME type of the uploaded file.
// It first checks the Content-Type header, then falls back to
// detecting the type from the file extension.
func (f *FileUpload) ContentType() string {
	if ct := f.Header.Get("Content-Type"); ct != "" {
		mediaType, _, _ := mime.ParseMediaType(ct)
		return mediaType
	}
	return mime.TypeByExtension(filepath.Ext(f.Filename))
}

var fileUploadType = reflect.TypeOf(FileUpload{})

// File creates a file binder that processes fields with `file:` tags.
// It extracts uploaded files from multipart/form-data requests.
// Non-multipart requests are skipped without error so the binder can
// sit in a chain next to Form and Query.
//
// Supported field types:
//   - FileUpload - single file
//   - *FileUpload - optional single file
//   - []FileUpload - multiple files
//   - []*FileUpload - multiple files with pointers
//
// Example:
//
//	type UploadRequest struct {
//		Title    string       `form:"title"`
//		Avatar   FileUpload   `file:"avatar"`
//		Gallery  []FileUpload `file:"gallery"`
//		Document *FileUpload  `file:"document"`
//	}
func File() Func {
	return func(r *http.Request, v any, opts Options) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" || !strings.HasPrefix(contentType, "multipart/form-data") {
			return nil
		}

		if r.MultipartForm == nil {
			if err := r.ParseMultipartForm(LoadLimits().MaxMultipartMemory); err != nil {
				// If parsing fails, skip file binding
				return nil
			}
		}

		rv, err := checkTarget(v)
		if err != nil {
			return err
		}
		rt := rv.Type()

		for i := 0; i < rv.NumField(); i++ {
			field := rv.Field(i)
			fieldType := rt.Field(i)

			if !field.CanSet() {
				continue
			}
			if opts.excluded(fieldType.Name) {
				continue
			}

			tag := fieldType.Tag.Get("file")
			if tag == "" || tag == "-" {
				continue
			}

			fileHeaders := r.MultipartForm.File[tag]
			if len(fileHeaders) == 0 {
				continue
			}

			if !opts.Config.OverwriteExisting && !field.IsZero() {
				continue
			}

			if err := setFileField(field, fieldType.Type, fileHeaders); err != nil {
				if opts.Config.IgnoreErrors {
					continue
				}
				return fmt.Errorf("%w: field %s: %v", ErrInvalidForm, fieldType.Name, err)
			}
		}

		return nil
	}
}

// setFileField sets file upload values to struct fields.
func setFileField(field reflect.Value, fieldType reflect.Type, fileHeaders []*multipart.FileHeader) error {
	// Handle pointer types
	if fieldType.Kind() == reflect.Ptr {
		if len(fileHeaders) == 0 {
			return nil
		}
		if field.IsNil() {
			field.Set(reflect.New(fieldType.Elem()))
		}
		return setFileField(field.Elem(), fieldType.Elem(), fileHeaders)
	}

	// Handle slice types
	if fieldType.Kind() == reflect.Slice {
		elemType := fieldType.Elem()
		slice := reflect.MakeSlice(fieldType, len(fileHeaders), len(fileHeaders))

		for i, header := range fileHeaders {
			upload, err := readFileHeader(header)
			if err != nil {
				return err
			}

			elem := slice.Index(i)
			if elemType.Kind() == reflect.Ptr {
				elem.Set(reflect.ValueOf(upload))
			} else {
				elem.Set(reflect.ValueOf(*upload))
			}
		}

		field.Set(slice)
		return nil
	}

	if len(fileHeaders) == 0 {
		return nil
	}

	if fieldType != fileUploadType {
		return fmt.Errorf("unsupported type for file field: %s", fieldType)
	}

	// Use only the first file for non-slice fields
	upload, err := readFileHeader(fileHeaders[0])
	if err != nil {
		return err
	}

	field.Set(reflect.ValueOf(*upload))
	return nil
}

// readFileHeader reads a multipart file header into a FileUpload struct.
func readFileHeader(header *multipart.FileHeader) (*FileUpload, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", header.Filename, err)
	}
	defer func() { _ = file.Close() }()

	return readFileUpload(file, header)
}

// GetFile retrieves a single file from a multipart form request.
// If multiple files are uploaded with the same field name, only the first is returned.
// Returns nil, nil if no file is found for the given field.
//
// Example:
//
//	file, err := binder.GetFile(r, "avatar")
//	if err != nil {
//		// respond with 400
//	}
//	if file != nil {
//		fmt.Printf("Uploaded: %s (%d bytes)\n", file.Filename, file.Size)
//	}
func GetFile(r *http.Request, field string) (*FileUpload, error) {
	if err := parseMultipartForm(r, LoadLimits().MaxMultipartMemory); err != nil {
		return nil, err
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get file %q: %w", field, err)
	}
	defer func() { _ = file.Close() }()

	return readFileUpload(file, header)
}

// GetFiles retrieves all files uploaded with the given field name.
// Returns an empty slice if no files are found.
func GetFiles(r *http.Request, field string) ([]*FileUpload, error) {
	if err := parseMultipartForm(r, LoadLimits().MaxMultipartMemory); err != nil {
		return nil, err
	}

	if r.MultipartForm == nil || r.MultipartForm.File == nil {
		return []*FileUpload{}, nil
	}

	fileHeaders := r.MultipartForm.File[field]
	if len(fileHeaders) == 0 {
		return []*FileUpload{}, nil
	}

	uploads := make([]*FileUpload, 0, len(fileHeaders))
	for _, header := range fileHeaders {
		upload, err := readFileHeader(header)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, upload)
	}

	return uploads, nil
}

// FileHeader contains metadata about an uploaded file.
type FileHeader struct {
	Filename string
	Size     int64
	Header   textproto.MIMEHeader
}

// StreamFile processes an uploaded file without loading it entirely into memory.
// This is useful for large files that need to be streamed directly to storage
// or processed in chunks.
//
// The handler function receives an io.Reader for the file content and
// the file header containing metadata. The file is automatically closed
// after the handler returns.
//
// Example:
//
//	err := binder.StreamFile(r, "video", func(reader io.Reader, header *binder.FileHeader) error {
//		return store.Upload(reader, header.Filename, header.Size)
//	})
func StreamFile(r *http.Request, field string, handler func(io.Reader, *FileHeader) error) error {
	if err := parseMultipartForm(r, LoadLimits().MaxMultipartMemory); err != nil {
		return err
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		return fmt.Errorf("failed to get file %q: %w", field, err)
	}
	defer func() { _ = file.Close() }()

	fileHeader := &FileHeader{
		Filename: header.Filename,
		Size:     header.Size,
		Header:   header.Header,
	}

	return handler(file, fileHeader)
}

// parseMultipartForm ensures the multipart form is parsed with the given memory limit.
func parseMultipartForm(r *http.Request, maxMemory int64) error {
	if r.MultipartForm != nil {
		return nil
	}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return fmt.Errorf("failed to parse multipart form: %w", err)
	}

	return nil
}

// readFileUpload reads a file into memory and creates a FileUpload.
func readFileUpload(file multipart.File, header *multipart.FileHeader) (*FileUpload, error) {
	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", header.Filename, err)
	}

	return &FileUpload{
		Filename: header.Filename,
		Size:     int64(len(content)),
		Header:   header.Header,
		Content:  content,
	}, nil
}
