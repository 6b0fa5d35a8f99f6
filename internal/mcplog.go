package internal

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// mcpLogger writes MCP activity to a file; stdout belongs to the protocol.
// Discards everything until InitMCPLogging enables it.
var mcpLogger = log.New(io.Discard, "", 0)

// MCPLogPath returns the MCP log file location inside the cache directory
func MCPLogPath(config *Config) string {
	return filepath.Join(config.CacheDir, "mcp.log")
}

// InitMCPLogging opens the MCP log file when mcp_log is enabled.
// The returned function closes the file.
func InitMCPLogging(config *Config) (func(), error) {
	if !config.MCPLogEnabled {
		return func() {}, nil
	}

	if err := EnsureDirs(config.CacheDir); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	logFile, err := os.OpenFile(MCPLogPath(config), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening MCP log: %w", err)
	}

	mcpLogger = log.New(logFile, "", log.LstdFlags|log.Lmicroseconds)
	return func() {
		mcpLogger = log.New(io.Discard, "", 0)
		logFile.Close()
	}, nil
}

func mcpLogf(level, format string, args ...any) {
	mcpLogger.Printf("[MCP] [%s] "+format, append([]any{level}, args...)...)
}

// MCPLogInfo logs an info message
func MCPLogInfo(format string, args ...any) {
	mcpLogf("INFO", format, args...)
}

// MCPLogError logs an error message
func MCPLogError(format string, args ...any) {
	mcpLogf("ERROR", format, args...)
}

// MCPLogDebug logs a debug message
func MCPLogDebug(format string, args ...any) {
	mcpLogf("DEBUG", format, args...)
}
