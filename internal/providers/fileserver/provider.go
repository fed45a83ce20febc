package fileserver

import (
	"context"
	"fmt"

	"github.com/sandboxfs/fileserver/internal/types"
)

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "fileserver",
		Name:        "File Server",
		Description: "Administrative file operations over a sandboxed registry",
		Category:    types.CategoryFilesystem,
		Capabilities: []string{
			"list",
			"read",
			"write",
			"delete",
			"backup",
			"switch_user",
		},
		Tools: []types.Tool{
			{
				ID:          "fileserver.list",
				Name:        "List Files",
				Description: "List registered files with owner and permissions",
				Parameters:  []types.Parameter{},
				Returns:     "array",
			},
			{
				ID:          "fileserver.read",
				Name:        "Read File",
				Description: "Read file contents as lines",
				Parameters: []types.Parameter{
					{Name: "name", Type: "string", Description: "File name", Required: true},
				},
				Returns: "array",
			},
			{
				ID:          "fileserver.write",
				Name:        "Write File",
				Description: "Write content to a file (overwrites existing)",
				Parameters: []types.Parameter{
					{Name: "name", Type: "string", Description: "File name", Required: true},
					{Name: "content", Type: "string", Description: "Content to write", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "fileserver.delete",
				Name:        "Delete File",
				Description: "Securely delete a file after an access check",
				Parameters: []types.Parameter{
					{Name: "name", Type: "string", Description: "File name", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "fileserver.backup",
				Name:        "Backup File",
				Description: "Copy a file to name.bak inside the sandbox",
				Parameters: []types.Parameter{
					{Name: "name", Type: "string", Description: "File name", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "fileserver.switch_user",
				Name:        "Switch User",
				Description: "Change the active session identity",
				Parameters: []types.Parameter{
					{Name: "username", Type: "string", Description: "New identity", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "fileserver.audit",
				Name:        "Access Audit",
				Description: "Recent access control decisions",
				Parameters: []types.Parameter{
					{Name: "limit", Type: "number", Description: "Max entries to return", Required: false},
				},
				Returns: "array",
			},
		},
		DataModels: []types.DataModel{
			{
				Name: "FileEntry",
				Fields: map[string]string{
					"name":   "string",
					"owner":  "string",
					"perm":   "int",
					"exists": "bool",
				},
			},
		},
	}
}

// Execute runs a fileserver operation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "fileserver.list":
		return p.list()
	case "fileserver.read":
		return p.read(params)
	case "fileserver.write":
		return p.write(params, appCtx)
	case "fileserver.delete":
		return p.delete(params, appCtx)
	case "fileserver.backup":
		return p.backup(ctx, params)
	case "fileserver.switch_user":
		return p.switchUser(params)
	case "fileserver.audit":
		return p.auditLog(params)
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
