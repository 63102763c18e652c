package platform

import (
	lua "github.com/yuin/gopher-lua"
)

// InjectPlatformTable creates a read-only platform table and injects it into
// the Lua state as a global. Rule files use it to scope rules to a pair of
// operating systems without hardcoding names:
//
//	if platform.os == "Linux" then ... end
//
// This must be called before loading any user rule code.
func InjectPlatformTable(L *lua.LState, hostOS OS, distro Distro) {
	platformTable := L.NewTable()

	L.SetField(platformTable, "os", lua.LString(hostOS.String()))
	L.SetField(platformTable, "distro", lua.LString(distro.String()))
	L.SetField(platformTable, "package_manager", lua.LString(distro.PackageManager().String()))

	// OS booleans
	L.SetField(platformTable, "is_windows", lua.LBool(hostOS == Windows))
	L.SetField(platformTable, "is_linux", lua.LBool(hostOS == Linux))
	L.SetField(platformTable, "is_macos", lua.LBool(hostOS == MacOS))
	L.SetField(platformTable, "is_unix_like", lua.LBool(hostOS.IsUnixLike()))
	L.SetField(platformTable, "is_bsd", lua.LBool(hostOS.IsBSD()))

	// Every OS name cmdx knows, for rule files that loop over targets.
	osTable := L.NewTable()
	for i, o := range AllOS() {
		L.RawSetInt(osTable, i+1, lua.LString(o.String()))
	}
	L.SetField(platformTable, "all_os", osTable)

	L.SetGlobal("platform", makeReadOnly(L, platformTable))
}

// makeReadOnly makes a Lua table read-only by creating a proxy table with a
// metatable. The proxy redirects reads to the original table but rejects all
// writes.
func makeReadOnly(L *lua.LState, table *lua.LTable) *lua.LTable {
	mt := L.NewTable()

	L.SetField(mt, "__index", table)

	L.SetField(mt, "__newindex", L.NewFunction(func(L *lua.LState) int {
		L.RaiseError("platform table is read-only and cannot be modified")
		return 0
	}))

	L.SetField(mt, "__metatable", lua.LString("protected"))

	proxy := L.NewTable()
	L.SetMetatable(proxy, mt)

	return proxy
}
