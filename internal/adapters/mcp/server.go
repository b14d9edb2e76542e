package mcpadapter

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kirillkom/placement-predictor/internal/core/domain"
	"github.com/kirillkom/placement-predictor/internal/core/ports"
)

const (
	serverName       = "placement-predictor"
	serverVersion    = "1.0.0"
	evaluateToolName = "evaluate_resume"
)

type Server struct {
	evaluator ports.PlacementEvaluator
	maxBytes  int64
}

func NewServer(evaluator ports.PlacementEvaluator, maxUploadBytes int64) *Server {
	return &Server{evaluator: evaluator, maxBytes: maxUploadBytes}
}

// MCPServer builds the tool server. The caller decides the transport.
func (s *Server) MCPServer() *server.MCPServer {
	srv := server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	srv.AddTool(evaluateTool(), s.handleEvaluate)
	return srv
}

func evaluateTool() mcp.Tool {
	return mcp.NewTool(evaluateToolName,
		mcp.WithDescription("Predict placement chances from a resume (PDF or DOCX) and/or manual CGPA and ATS score."),
		mcp.WithString("filename",
			mcp.Description("Resume file name; the extension selects the format (.pdf or .docx)."),
		),
		mcp.WithString("content_base64",
			mcp.Description("Base64-encoded resume bytes. Omit for a manual evaluation."),
		),
		mcp.WithString("cgpa",
			mcp.Description("CGPA on a 0-10 scale. Required when no resume is given or the resume has no CGPA."),
		),
		mcp.WithString("ats_score",
			mcp.Description("ATS score on a 0-100 scale. Used only when no resume is given."),
		),
	)
}

func (s *Server) handleEvaluate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req := domain.EvaluationRequest{
		GradeInput: request.GetString("cgpa", ""),
		ScoreInput: request.GetString("ats_score", ""),
	}

	filename := strings.TrimSpace(request.GetString("filename", ""))
	encoded := strings.TrimSpace(request.GetString("content_base64", ""))
	switch {
	case filename != "" && encoded == "":
		return mcp.NewToolResultError("content_base64 is required when filename is given"), nil
	case filename == "" && encoded != "":
		return mcp.NewToolResultError("filename is required when content_base64 is given"), nil
	}
	if filename != "" {
		raw, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return mcp.NewToolResultError("content_base64 is not valid base64"), nil
		}
		if s.maxBytes > 0 && int64(len(raw)) > s.maxBytes {
			return mcp.NewToolResultError("The uploaded file is too large"), nil
		}
		req.Filename = filename
		req.Content = bytes.NewReader(raw)
	}

	eval, err := s.evaluator.Evaluate(ctx, req)
	if err != nil {
		if domain.IsUserInput(err) || domain.IsKind(err, domain.ErrExtractionFailed) {
			slog.Warn("mcp_evaluation_rejected", "code", domain.ErrorCode(err), "error", err)
			return mcp.NewToolResultError(domain.UserMessage(err)), nil
		}
		return nil, fmt.Errorf("evaluate resume: %w", err)
	}

	payload, err := json.Marshal(eval)
	if err != nil {
		return nil, fmt.Errorf("marshal evaluation: %w", err)
	}
	return mcp.NewToolResultText(string(payload)), nil
}
