package jetton

// Compiled contract cells in bag-of-cells base64.
const (
	codeBOC = "te6ccgECIAEABLQAART/APSkE/S88sgLAQIBYgIDAgLKBAUCASAUFQOp1AdDTAwFxsMABkX+RcOIB+kAiUFVvBPhh7UTQ1AH4YtIAAY4V+gD6QAEB0gABkdSSbQHi0gBVMGwUjpP6QAEB0gABkdSSbQHiWQLRAds84lUT2zwwh0GBwBtqQC0PQEMG0BggDYrwGAEPQPb6Hy4IcBggDYryICgBD0F8gByPQAyQHMcAHKAEADWc8WAc8WyYATy7aLt+3Ah10nCH5UwINcLH94Cklt/4CGCCfs0W7qOoDHTHwGCCfs0W7ry4IGBAQHXAAEx+EFvJBAjXwNm2zx/4CGCEAwIep66jqEx0x8BghAMCHqeuvLggdIAAZHUkm0B4gExVTDbPDFBMH/gIYIQe92X3rrjAgHAAAwICQoAUMj4QgHMfwHKAFUwUEP6AgHPFiJus5Z/AcoAEsyVMnBYygDiygDJ7VQAHPhBbyQQI18DI8cF8uCEAsQx0x8BghB73ZfeuvLggdM/+gD6QAEB+kAh1wsBwwCRAZIxbeIUQzBsFBBHEDZFd9s8UDShJW6zjqJwBiBu8tCAcIBCB8gBghDVMnbbWMsfyz/JEEhBMBdtbds8kjQ04kMAfwsSAYSOvPkBgvDNDZhssaL0aK5wifT8MWLBFuX1P70RpoOfUtv1BAgwsrqOlPhBbyQQI18DghA7msoAIds8f9sx4JEw4nAMAjj4QW8kECNfA1VA2zwBgRFNAts8UAbHBRXy9FUCHxwEOFFhoFUx2zxc2zxwcIBAIfgoIds8EDUQThAjEC8fHA0OAgjbPNs8DxACIshVUNs8yUVgEEoQOUCp2zxaERIABMjJAALQAE6CEBeNRRlQB8sfFcs/UAP6AgHPFgEgbpUwcAHLAZLPFuIB+gIBzxYB9shxAcoBUAcBygBwAcoCUAXPFlAD+gJwAcpoI26zJW6zsY5MfwHKAMhwAcoAcAHKACRus51/AcoABCBu8tCAUATMljQDcAHKAOIkbrOdfwHKAAQgbvLQgFAEzJY0A3ABygDicAHKAAJ/AcoAAslYzJczMwFwAcoA4iFusxMAMJx/AcoAASBu8tCAAcyVMXABygDiyQH7AAJ3vijvaiaGoA/DFpAADHCv0AfSAAgOkAAMjqSTaA8WkAKpg2CkdJ/SAAgOkAAMjqSTaA8SyBaIDtnnFtnkHRYCAUgXGAAIECNfAwIBWBkaALm3ejBOC52Hq6WVz2PQnYc6yVCjbNBOE7rGpaVsj5ZkWnXlv74sRzBOBAq4A3AM7HKZywdVyOS2WHBOGEyIpMmvt8kXL2wztOq6QLBOCBnOrTzivzpKFgOsLcTI9lACe6289qJoagD8MWkAAMcK/QB9IACA6QAAyOpJNoDxaQAqmDYKR0n9IACA6QAAyOpJNoDxLIFogO2ecSqB7Z5AHRsCd68W9qJoagD8MWkAAMcK/QB9IACA6QAAyOpJNoDxaQAqmDYKR0n9IACA6QAAyOpJNoDxLIFogO2ecW2eQB0eAgzbPGxC2zwfHABKcFnIcAHLAXMBywFwAcsAEszMyfkAyHIBywFwAcsAEsoHy//J0AAGcFl/AQ74KNs8MEMwHwAO+EL4KFjwJA=="
	systemBOC = "te6cckECOQEACMIAAQHAAQIBIBgCAQW+xXwDART/APSkE/S88sgLBAIBYgkFAgEgBwYAlb3ejBOC52Hq6WVz2PQnYc6yVCjbNBOE7rGpaVsj5ZkWnXlv74sRzBOBAq4A3AM7HKZywdVyOS2WHBOE7o8AHy2bAeT+QdWSzWUQnAJhv9gXaiaGoA/DFpAADHCECAgOuAfSAAgP0gAKGYNgnHRv0gAID9IACJAWiA7Z5xbZ5BcIAA74QlMS8CcwAgLKCwoAbanAtD0BDBtAYIA2K8BgBD0D2+h8uCHAYIA2K8iAoAQ9BfIAcj0AMkBzHABygBAA1nPFgHPFsmACydQHQ0wMBcbDAAZF/kXDiAfpAIlBVbwT4Ye1E0NQB+GLSAAGOEIEBAdcA+kABAfpAAUMwbBOOjfpAAQH6QAESAtEB2zziVRLbPDDI+EIBzH8BygBVIFAjgQEBzwABzxYBzxbJ7VSFwwEvnAh10nCH5UwINcLH94CjikxgCDXIdMf0z8x+gAwgTVSIoIQF41FGboDghB73ZfeuhOxEvL0E6ACf+AhghAPin6luo8IMds8bBfbPH/gIYIQF41FGbrjAgGCEFlfB7y6FhMPDQFajqjTHwGCEFlfB7y68uCB0z/6APpAAQH6QCHXCwHDAJEBkjFt4hRDMGwU4DBwDgLUW/hBbySBEU1TOMcF8vRRhKGCAPX8IcL/8vRDMFI52zyBPrsBggkxLQCgggiYloCgErzy9H9wA4BAVDNmyFUwghB73ZfeUAXLHxPLPwH6AgHPFgEgbpUwcAHLAZLPFuLJVBMEUDNtbds8fxUwAgox2zxsFhIQA/b4QW8kUyrHBbOOkvhCU7jwJwGBEU0C2zwkxwXy9N5RyKCCAPX8IcL/8vQh+CdvECGhggiYloBmtgihggiYloCgoSbCAJYQfVCJXwjjDSVusyLCALCOoHAGIG7y0IBwBMgBghDVMnbbWMsfyz/JEEdDMBdtbds8kjVb4n82ETACclBNQzDbPFIwoBqhcHAoSBNQdMhVMIIQc2LQnFAFyx8Tyz8B+gIBzxYBzxbJKBBGQxNQVW1t2zxQBRUwAFjTHwGCEBeNRRm68uCB0z/6APpAAQH6QCHXCwHDAJEBkjFt4gH6AFFVFRRDMAS8bCL4QW8kgRFNUzvHBfL0UbehggD1/CHC//L0QzBSPNs8cSTCAJIwct6BPrsCqIIJMS0AoIIImJaAoBK88vT4QlQgZPAnXNs8f1B2cIBAK1RMORjIVVDbPMkQVhA0WRU2MhQBBNs8MAAkbDH6ADFx1yH6ADH6ADCnA6sAAGzTHwGCEA+KfqW68uCB0z/6APpAAQH6QCHXCwHDAJEBkjFt4gHSAAGR1JJtAeL6AFFmFhUUQzAABHACAQW9XCwZART/APSkE/S88sgLGgIBYiUbAgEgIxwCAUgeHQC5t3owTgudh6ullc9j0J2HOslQo2zQThO6xqWlbI+WZFp15b++LEcwTgQKuANwDOxymcsHVcjktlhwThhMiKTJr7fJFy9sM7TqukCwTggZzq084r86ShYDrC3EyPZQAgFYIR8Cd68W9qJoagD8MWkAAMcK/QB9IACA6QAAyOpJNoDxaQAqmDYKR0n9IACA6QAAyOpJNoDxLIFogO2ecW2eQDggAQ74KNs8MEMwNwJ7rbz2omhqAPwxaQAAxwr9AH0gAIDpAADI6kk2gPFpACqYNgpHSf0gAIDpAADI6kk2gPEsgWiA7Z5xKoHtnkA4IgIM2zxsQts8NzYCd74o72omhqAPwxaQAAxwr9AH0gAIDpAADI6kk2gPFpACqYNgpHSf0gAIDpAADI6kk2gPEsgWiA7Z5xbZ5DgkAAgQI18DAgLKJyYAbakAtD0BDBtAYIA2K8BgBD0D2+h8uCHAYIA2K8iAoAQ9BfIAcj0AMkBzHABygBAA1nPFgHPFsmADqdQHQ0wMBcbDAAZF/kXDiAfpAIlBVbwT4Ye1E0NQB+GLSAAGOFfoA+kABAdIAAZHUkm0B4tIAVTBsFI6T+kABAdIAAZHUkm0B4lkC0QHbPOJVE9s8MI4KSgAUMj4QgHMfwHKAFUwUEP6AgHPFiJus5Z/AcoAEsyVMnBYygDiygDJ7VQE8u2i7ftwIddJwh+VMCDXCx/eApJbf+Ahggn7NFu6jqAx0x8Bggn7NFu68uCBgQEB1wABMfhBbyQQI18DZts8f+AhghAMCHqeuo6hMdMfAYIQDAh6nrry4IHSAAGR1JJtAeIBMVUw2zwxQTB/4CGCEHvdl9664wIBwAAuLSsqAYSOvPkBgvDNDZhssaL0aK5wifT8MWLBFuX1P70RpoOfUtv1BAgwsrqOlPhBbyQQI18DghA7msoAIds8f9sx4JEw4nAuAsQx0x8BghB73ZfeuvLggdM/+gD6QAEB+kAh1wsBwwCRAZIxbeIUQzBsFBBHEDZFd9s8UDShJW6zjqJwBiBu8tCAcIBCB8gBghDVMnbbWMsfyz/JEEhBMBdtbds8kjQ04kMAfywwAjj4QW8kECNfA1VA2zwBgRFNAts8UAbHBRXy9FUCNzYAHPhBbyQQI18DI8cF8uCEBDhRYaBVMds8XNs8cHCAQCH4KCHbPBA1EE4QIxAvNzYzLwIiyFVQ2zzJRWAQShA5QKnbPFoyMAH2yHEBygFQBwHKAHABygJQBc8WUAP6AnABymgjbrMlbrOxjkx/AcoAyHABygBwAcoAJG6znX8BygAEIG7y0IBQBMyWNANwAcoA4iRus51/AcoABCBu8tCAUATMljQDcAHKAOJwAcoAAn8BygACyVjMlzMzAXABygDiIW6zMQAwnH8BygABIG7y0IABzJUxcAHKAOLJAfsAAE6CEBeNRRlQB8sfFcs/UAP6AgHPFgEgbpUwcAHLAZLPFuIB+gIBzxYCCNs82zw1NAAC0AAEyMkASnBZyHABywFzAcsBcAHLABLMzMn5AMhyAcsBcAHLABLKB8v/ydAADvhC+ChY8CQABnBZf+v8vYs="
)
