package filestorage

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"strings"

	"github.com/sekolahku/sekolahku/internal/pkg/logger"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const driveFolderMimeType = "application/vnd.google-apps.folder"

// DriveStorage saves files to Google Drive using a service account. Uploaded
// files are made readable by anyone with the link and the stored reference is
// the file's webContentLink.
type DriveStorage struct {
	svc          *drive.Service
	rootFolderID string
}

// NewDriveStorage creates a Drive-backed storage. credentialsFile is a
// service account key file; rootFolderID is the Drive folder everything is
// uploaded under (empty for the service account's own root).
func NewDriveStorage(ctx context.Context, credentialsFile, rootFolderID string) (*DriveStorage, error) {
	svc, err := drive.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(drive.DriveScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	logger.Info().Str("rootFolderId", rootFolderID).Msg("Google Drive storage initialized")

	return &DriveStorage{
		svc:          svc,
		rootFolderID: rootFolderID,
	}, nil
}

// Save uploads a file into the named folder below the root and returns its
// shareable content link.
func (ds *DriveStorage) Save(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, error) {
	if fileHeader == nil {
		return "", nil // No file uploaded
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	folderID, err := ds.findOrCreateFolder(ctx, folder, ds.rootFolderID)
	if err != nil {
		return "", err
	}

	meta := &drive.File{
		Name: fileHeader.Filename,
	}
	if folderID != "" {
		meta.Parents = []string{folderID}
	}

	created, err := ds.svc.Files.Create(meta).
		Media(file).
		Fields("id, webContentLink").
		Context(ctx).
		Do()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Drive upload failed")
		return "", fmt.Errorf("failed to upload file to drive: %w", err)
	}

	// Anyone with the link can read; the link is stored in the database
	// and handed straight to clients.
	_, err = ds.svc.Permissions.Create(created.Id, &drive.Permission{
		Type: "anyone",
		Role: "reader",
	}).Context(ctx).Do()
	if err != nil {
		logger.Error().Err(err).Str("fileId", created.Id).Msg("Failed to set drive file permission")
		return "", fmt.Errorf("failed to set drive file permission: %w", err)
	}

	link := created.WebContentLink
	if link == "" {
		got, err := ds.svc.Files.Get(created.Id).Fields("webContentLink").Context(ctx).Do()
		if err != nil {
			return "", fmt.Errorf("failed to read drive file link: %w", err)
		}
		link = got.WebContentLink
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("fileId", created.Id).Msg("File uploaded to drive")
	return link, nil
}

// Delete removes a drive file by its stored content link
func (ds *DriveStorage) Delete(ctx context.Context, ref string) error {
	if ref == "" {
		return nil
	}

	fileID := extractDriveFileID(ref)
	if fileID == "" {
		return fmt.Errorf("could not extract drive file id from reference: %s", ref)
	}

	if err := ds.svc.Files.Delete(fileID).Context(ctx).Do(); err != nil {
		logger.Error().Err(err).Str("fileId", fileID).Msg("Failed to delete drive file")
		return fmt.Errorf("failed to delete drive file: %w", err)
	}

	logger.Info().Str("fileId", fileID).Msg("Drive file deleted")
	return nil
}

// CreateFolder creates a named folder below the root and returns its ID
func (ds *DriveStorage) CreateFolder(ctx context.Context, name string) (string, error) {
	return ds.findOrCreateFolder(ctx, name, ds.rootFolderID)
}

// SaveToFolder uploads a file directly into a known folder ID. Used for
// teacher work uploads where the folder was created up front.
func (ds *DriveStorage) SaveToFolder(ctx context.Context, fileHeader *multipart.FileHeader, folderID string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	meta := &drive.File{Name: fileHeader.Filename}
	if folderID != "" {
		meta.Parents = []string{folderID}
	}

	created, err := ds.svc.Files.Create(meta).
		Media(file).
		Fields("id, webContentLink").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload file to drive: %w", err)
	}

	_, err = ds.svc.Permissions.Create(created.Id, &drive.Permission{
		Type: "anyone",
		Role: "reader",
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to set drive file permission: %w", err)
	}

	link := created.WebContentLink
	if link == "" {
		got, err := ds.svc.Files.Get(created.Id).Fields("webContentLink").Context(ctx).Do()
		if err != nil {
			return "", fmt.Errorf("failed to read drive file link: %w", err)
		}
		link = got.WebContentLink
	}

	return link, nil
}

// findOrCreateFolder looks a folder up by name below the parent and creates
// it when absent. An empty name resolves to the parent itself.
func (ds *DriveStorage) findOrCreateFolder(ctx context.Context, name, parentID string) (string, error) {
	if name == "" {
		return parentID, nil
	}

	query := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false",
		strings.ReplaceAll(name, "'", "\\'"), driveFolderMimeType)
	if parentID != "" {
		query += fmt.Sprintf(" and '%s' in parents", parentID)
	}

	list, err := ds.svc.Files.List().Q(query).Fields("files(id)").PageSize(1).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to look up drive folder %s: %w", name, err)
	}
	if len(list.Files) > 0 {
		return list.Files[0].Id, nil
	}

	meta := &drive.File{
		Name:     name,
		MimeType: driveFolderMimeType,
	}
	if parentID != "" {
		meta.Parents = []string{parentID}
	}

	created, err := ds.svc.Files.Create(meta).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create drive folder %s: %w", name, err)
	}

	logger.Info().Str("folder", name).Str("folderId", created.Id).Msg("Drive folder created")
	return created.Id, nil
}

// extractDriveFileID pulls the file ID out of a drive link. Both the
// uc?id=<id> and /file/d/<id>/ link shapes are handled.
func extractDriveFileID(ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}

	if id := u.Query().Get("id"); id != "" {
		return id
	}

	parts := strings.Split(u.Path, "/")
	for i, p := range parts {
		if p == "d" && i+1 < len(parts) {
			return parts[i+1]
		}
	}

	return ""
}
