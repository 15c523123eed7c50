package main

import (
	"context"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var sess = newSession()

func handleEval(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	src, err := request.RequireString("src")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := sess.eval(src)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}

func handleGlobals(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(strings.Join(sess.globals(), "\n")), nil
}

func handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess.reset()
	return mcp.NewToolResultText("session reset"), nil
}

func main() {
	s := server.NewMCPServer(
		"flang",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	s.AddTool(
		mcp.NewTool("flang_eval",
			mcp.WithDescription("Evaluate flang source in a persistent session. Returns the printed output followed by the value of the last expression."),
			mcp.WithString("src",
				mcp.Required(),
				mcp.Description("flang source, e.g. (print (cons 1 (quote (2 3))))"),
			),
		),
		handleEval,
	)

	s.AddTool(
		mcp.NewTool("flang_globals",
			mcp.WithDescription("List the names bound in the global scope, builtins included."),
		),
		handleGlobals,
	)

	s.AddTool(
		mcp.NewTool("flang_reset",
			mcp.WithDescription("Drop every user definition and start a fresh session."),
		),
		handleReset,
	)

	if err := server.ServeStdio(s); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
