package finder

import "golang.org/x/sys/unix"

const attrName = "com.apple.FinderInfo"

const errNoAttr = unix.ENOATTR
