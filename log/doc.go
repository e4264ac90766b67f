/*
Package log implements the logging framework of the b64 tools on top of
seelog.

The logger is disabled until Init (or UseLogger/SetLogWriter) is called,
so library code can log unconditionally.

Errors are logged once, where they enter our code: errors returned by
external packages are wrapped in a log.Error() call, own errors are created
with log.Error[f](). The codec package encode/base64 does not log at all,
its errors are logged by the command engine that called it. Conditions that
must never happen are reported with panic(log.Critical[f](...)).
*/
package log
